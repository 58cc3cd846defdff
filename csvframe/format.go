// Package csvframe reads CSV data with encoding and separator
// detection into a gridview.Frame with inferred column types.
package csvframe

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/domonda/go-types/charset"
)

// Format describes the encoding and separator of CSV data.
type Format struct {
	Encoding  string `json:"encoding" toml:"encoding"`
	Separator string `json:"separator" toml:"separator"`
}

// NewFormat returns a UTF-8 Format with the passed separator.
func NewFormat(separator string) *Format {
	return &Format{Encoding: "UTF-8", Separator: separator}
}

// Validate can be called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvframe.Format")
	case f.Encoding == "":
		return errors.New("missing csvframe.Format.Encoding")
	case len(f.Separator) != 1:
		return fmt.Errorf("invalid csvframe.Format.Separator: %q", f.Separator)
	}
	return nil
}

// DetectionConfig lists the encodings tried in order when detecting
// the format of CSV data and the test strings that
// have to be decoded correctly for an encoding to match.
type DetectionConfig struct {
	Encodings     []string `json:"encodings" toml:"encodings"`
	EncodingTests []string `json:"encodingTests" toml:"encoding_tests"`
}

// NewDefaultDetectionConfig returns a DetectionConfig
// for Unicode, western European, and Cyrillic text.
func NewDefaultDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252",
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€", "é", "è", "ñ",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}

// DetectFormat detects the encoding and separator of CSV data
// and returns the data decoded as UTF-8
// without a leading "sep=" declaration line.
//
// The separator is taken from a "sep=" first line if present,
// else the most frequent of comma, semicolon, and tab wins,
// with comma on ties.
func DetectFormat(data []byte, config *DetectionConfig) (decoded []byte, format *Format, err error) {
	if config == nil {
		config = NewDefaultDetectionConfig()
	}
	encodings := make([]charset.Encoding, 0, len(config.Encodings))
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}

	format = new(Format)
	decoded, format.Encoding, err = charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	decoded = charset.TrimBOM(decoded, charset.BOMUTF8)

	firstLine, rest, _ := bytes.Cut(decoded, []byte{'\n'})
	if sep := parseSepLine(firstLine); sep != "" {
		format.Separator = sep
		return rest, format, nil
	}

	var (
		commas     = bytes.Count(decoded, []byte{','})
		semicolons = bytes.Count(decoded, []byte{';'})
		tabs       = bytes.Count(decoded, []byte{'\t'})
	)
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	default:
		format.Separator = ","
	}
	return decoded, format, nil
}

// parseSepLine returns the separator declared by a line
// like `sep=;` or `"SEP=,"` or an empty string.
func parseSepLine(line []byte) string {
	line = bytes.TrimRight(line, "\r")
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:])
}
