package csvframe

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-gridview"
)

// ErrNoHeader is returned for CSV data without a header row.
var ErrNoHeader = errors.New("missing CSV header row")

// Config configures ReadFrame.
// The zero value detects the format
// and uses gridview.NewStringParser.
type Config struct {
	// Format disables format detection if not nil.
	Format *Format
	// Detection is used for format detection,
	// nil means NewDefaultDetectionConfig.
	Detection *DetectionConfig
	// Parser infers the column types.
	Parser *gridview.StringParser
	// IndexColumns are moved into the frame index.
	IndexColumns []string
}

// Parse decodes data in the passed format
// and returns its rows of fields.
// A leading "sep=" line must match the separator of format
// and is not returned as row.
func Parse(data []byte, format *Format) ([][]string, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if format.Encoding == "UTF-8" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}
	firstLine, rest, _ := bytes.Cut(data, []byte{'\n'})
	if sep := parseSepLine(firstLine); sep != "" {
		if sep != format.Separator {
			return nil, fmt.Errorf("separator %q declared in first line differs from format separator %q", sep, format.Separator)
		}
		data = rest
	}
	return parseRecords(data, format.Separator)
}

// ParseDetectFormat detects the format of data
// and returns its rows of fields and the detected format.
func ParseDetectFormat(data []byte, config *DetectionConfig) ([][]string, *Format, error) {
	decoded, format, err := DetectFormat(data, config)
	if err != nil {
		return nil, nil, err
	}
	rows, err := parseRecords(decoded, format.Separator)
	if err != nil {
		return nil, format, err
	}
	return rows, format, nil
}

func parseRecords(data []byte, separator string) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma, _ = utf8.DecodeRuneInString(separator)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = false

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// ReadFrame parses CSV data with a header row
// into a gridview.Frame with inferred column types.
// Empty rows at the top and bottom are ignored.
// A nil config is valid.
func ReadFrame(title string, data []byte, config *Config) (*gridview.Frame, error) {
	if config == nil {
		config = new(Config)
	}
	var (
		rows [][]string
		err  error
	)
	if config.Format != nil {
		rows, err = Parse(data, config.Format)
	} else {
		rows, _, err = ParseDetectFormat(data, config.Detection)
	}
	if err != nil {
		return nil, err
	}
	rows = gridview.RemoveEmptyStringRows(rows)
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	frame, err := gridview.FrameFromStrings(title, rows[0], rows[1:], config.Parser)
	if err != nil {
		return nil, err
	}
	if len(config.IndexColumns) > 0 {
		return frame.WithIndex(config.IndexColumns...)
	}
	return frame, nil
}
