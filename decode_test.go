package diffx

import (
	"reflect"
	"testing"
)

func TestDecodeLines(t *testing.T) {
	t.Run("PlainUTF8", func(t *testing.T) {
		lines := DecodeLines([]byte("one\ntwo\nthree\n"))

		expected := []string{"one", "two", "three"}
		if !reflect.DeepEqual(lines, expected) {
			t.Errorf("Lines mismatch: got %v, want %v", lines, expected)
		}
	})

	t.Run("NoTrailingNewline", func(t *testing.T) {
		lines := DecodeLines([]byte("one\ntwo"))

		if !reflect.DeepEqual(lines, []string{"one", "two"}) {
			t.Errorf("Lines mismatch: %v", lines)
		}
	})

	t.Run("BlankLinePreserved", func(t *testing.T) {
		lines := DecodeLines([]byte("one\n\ntwo\n"))

		if !reflect.DeepEqual(lines, []string{"one", "", "two"}) {
			t.Errorf("Blank interior line should survive: %v", lines)
		}
	})

	t.Run("CRLF", func(t *testing.T) {
		lines := DecodeLines([]byte("one\r\ntwo\r\n"))

		if !reflect.DeepEqual(lines, []string{"one", "two"}) {
			t.Errorf("CRLF content mismatch: %v", lines)
		}
	})

	t.Run("LoneCR", func(t *testing.T) {
		lines := DecodeLines([]byte("one\rtwo\r"))

		if !reflect.DeepEqual(lines, []string{"one", "two"}) {
			t.Errorf("CR content mismatch: %v", lines)
		}
	})

	t.Run("EmptyContent", func(t *testing.T) {
		if lines := DecodeLines(nil); len(lines) != 0 {
			t.Errorf("Empty content should yield zero lines, got %v", lines)
		}
	})

	t.Run("InvalidBytesReplaced", func(t *testing.T) {
		lines := DecodeLines([]byte{'a', 0xFF, 'b', '\n'})

		if len(lines) != 1 {
			t.Fatalf("Expected 1 line, got %v", lines)
		}
		if lines[0] != "a�b" {
			t.Errorf("Undecodable byte should become U+FFFD: %q", lines[0])
		}
	})

	t.Run("UTF16LittleEndianBOM", func(t *testing.T) {
		data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, '\n', 0x00}

		lines := DecodeLines(data)

		if !reflect.DeepEqual(lines, []string{"hi"}) {
			t.Errorf("UTF-16 LE content mismatch: %v", lines)
		}
	})

	t.Run("UTF16BigEndianBOM", func(t *testing.T) {
		data := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i', 0x00, '\n'}

		lines := DecodeLines(data)

		if !reflect.DeepEqual(lines, []string{"hi"}) {
			t.Errorf("UTF-16 BE content mismatch: %v", lines)
		}
	})
}
