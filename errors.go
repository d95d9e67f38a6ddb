package diffx

import (
	"github.com/boostgo/errorx"
)

var (
	ErrInvalidPattern = errorx.New("diffx.ignore.invalid_pattern")

	ErrOpenFile = errorx.New("diffx.file.open")
	ErrReadFile = errorx.New("diffx.file.read")

	ErrConnectSSH  = errorx.New("diffx.sftp.connect")
	ErrOpenSFTP    = errorx.New("diffx.sftp.session")
	ErrCloseSFTP   = errorx.New("diffx.sftp.close")
	ErrExcelReport = errorx.New("diffx.report.excel")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type patternErrorContext struct {
	Pattern string `json:"pattern"`
	Error   error  `json:"error"`
}

type connectErrorContext struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	User  string `json:"user"`
	Error error  `json:"error"`
}

func newOpenFileError(path string, err error) error {
	return ErrOpenFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newReadFileError(path string, err error) error {
	return ErrReadFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newConnectError(host string, port int, user string, err error) error {
	return ErrConnectSSH.
		SetError(err).
		SetData(connectErrorContext{
			Host:  host,
			Port:  port,
			User:  user,
			Error: err,
		})
}
