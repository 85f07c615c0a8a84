package iofs

import (
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/gnames/gnlib"
	"golang.org/x/text/encoding/charmap"
)

// ReadSource reads a document and decodes it to UTF-8. Supported encodings
// are "cp1251" and "utf-8".
func ReadSource(path, encoding string) (string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", ReadFileError(path, err)
	}
	return Decode(bs, encoding, path)
}

// Decode converts raw bytes of a document to a string. The path is used
// in error messages only.
func Decode(bs []byte, encoding, path string) (string, error) {
	switch encoding {
	case "cp1251":
		res, err := charmap.Windows1251.NewDecoder().Bytes(bs)
		if err != nil {
			return "", DecodeFileError(path, encoding, err)
		}
		return string(res), nil
	case "utf-8":
		if !utf8.Valid(bs) {
			slog.Warn("Source has invalid UTF-8 sequences", "path", path)
			return gnlib.FixUtf8(string(bs)), nil
		}
		return string(bs), nil
	default:
		return "", UnknownEncodingError(encoding)
	}
}
