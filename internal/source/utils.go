package source

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrBadEncoding reports content that could not be normalized to UTF-8.
var ErrBadEncoding = errors.New("source is not valid UTF-8")

// normalizeContent prepares raw disk bytes for the source map: UTF-16
// inputs are transcoded, a UTF-8 BOM is stripped, and CRLF line endings
// are collapsed to LF so the line index stays byte-accurate.
func normalizeContent(raw []byte) (string, FileFlags, error) {
	flags := FileFlags(0)

	if decoded, ok, err := decodeUTF16(raw); err != nil {
		return "", 0, err
	} else if ok {
		raw = decoded
		flags |= FileTranscodedUTF16
	}

	if trimmed, had := removeBOM(raw); had {
		raw = trimmed
		flags |= FileHadBOM
	}

	if normalized, had := normalizeCRLF(raw); had {
		raw = normalized
		flags |= FileNormalizedCRLF
	}

	if !utf8.Valid(raw) {
		return "", 0, ErrBadEncoding
	}
	return string(raw), flags, nil
}

// decodeUTF16 transcodes UTF-16 content (detected by its BOM) to UTF-8.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	if len(content) < 2 {
		return content, false, nil
	}
	le := content[0] == 0xFF && content[1] == 0xFE
	be := content[0] == 0xFE && content[1] == 0xFF
	if !le && !be {
		return content, false, nil
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	if be {
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, false, fmt.Errorf("%w: transcoding UTF-16: %v", ErrBadEncoding, err)
	}
	return out, true, nil
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r alone.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}

// CharPosOf converts a byte offset within src into a character offset.
func CharPosOf(src string, byteOff uint32) CharPos {
	if int(byteOff) > len(src) {
		byteOff = uint32(len(src))
	}
	return CharPos(utf8.RuneCountInString(src[:byteOff]))
}
