package paradox

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeBytes converts raw file bytes to a UTF-8 string. Detection order:
// UTF-8 BOM, UTF-16 BOM (either endianness), plain UTF-8 by validation,
// then Windows-1252 as the legacy fallback (game files predating Unicode
// use it for accented map names). Windows-1252 decoding cannot fail, so in
// practice ErrEncoding surfaces only for byte streams that claim UTF-8 or
// UTF-16 via a BOM and then break the promise.
func decodeBytes(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		rest := data[len(bomUTF8):]
		if !utf8.Valid(rest) {
			return "", fmt.Errorf("%w: UTF-8 byte-order mark followed by invalid UTF-8", ErrEncoding)
		}
		return string(rest), nil

	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data, unicode.LittleEndian)

	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data, unicode.BigEndian)

	case utf8.Valid(data):
		return string(data), nil

	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return string(decoded), nil
	}
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: UTF-16 decode failed: %v", ErrEncoding, err)
	}
	return string(decoded), nil
}
