package diffx

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeLines turns raw file content into text lines. Decoding is
// best-effort and never fails: UTF-16 input is detected by its BOM,
// anything else is treated as UTF-8 with undecodable bytes replaced by
// U+FFFD. The data loss on malformed input is intentional.
func DecodeLines(data []byte) []string {
	return splitLines(decodeText(data))
}

func decodeText(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := decoder.Bytes(data); err == nil {
			return string(decoded)
		}
	case bytes.HasPrefix(data, bomUTF16BE):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := decoder.Bytes(data); err == nil {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// splitLines splits decoded content on LF, CRLF or lone CR and drops
// the empty tail produced by a final terminator
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
