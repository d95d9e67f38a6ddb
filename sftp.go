package diffx

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPTree reads one comparison side over SFTP. One SFTPTree wraps one
// SSH session; the same tree may serve both sides of a comparison when
// the old and new roots live on the same server.
type SFTPTree struct {
	conn   *ssh.Client
	client *sftp.Client
}

// DialSFTP opens an SSH connection with password auth and starts an
// SFTP session over it. The caller owns the returned tree and must
// Close it on every exit path.
func DialSFTP(host string, port int, user, password string) (*SFTPTree, error) {
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
		},
		// Host keys are not verified; comparisons run against known
		// internal servers
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         30 * time.Second,
	}

	conn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", host, port), config)
	if err != nil {
		return nil, newConnectError(host, port, user, err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, ErrOpenSFTP.
			SetError(err).
			SetData(connectErrorContext{
				Host:  host,
				Port:  port,
				User:  user,
				Error: err,
			})
	}

	return &SFTPTree{
		conn:   conn,
		client: client,
	}, nil
}

// Close releases the SFTP session, then the SSH connection
func (t *SFTPTree) Close() error {
	if t == nil {
		return nil
	}

	sftpErr := t.client.Close()
	sshErr := t.conn.Close()

	if sftpErr != nil {
		return ErrCloseSFTP.SetError(sftpErr)
	}
	if sshErr != nil {
		return ErrCloseSFTP.SetError(sshErr)
	}

	return nil
}

// List returns every file under root, recursively. Subtrees that fail
// to list contribute nothing; only files are returned.
func (t *SFTPTree) List(root string) []string {
	root = strings.TrimSuffix(root, "/")

	var files []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := t.client.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			full := path.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(full)
				continue
			}
			files = append(files, full)
		}
	}
	walk(root)

	return files
}

// ReadLines fetches and best-effort decodes a remote file into lines
func (t *SFTPTree) ReadLines(p string) ([]string, error) {
	file, err := t.client.Open(p)
	if err != nil {
		return nil, newOpenFileError(p, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, newReadFileError(p, err)
	}

	return DecodeLines(data), nil
}
