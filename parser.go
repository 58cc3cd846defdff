package gridview

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// StringParser parses cell strings of text sources like CSV files
// or spreadsheets into typed values.
//
// All string lists are compared case sensitive.
// The zero value parses numbers and durations,
// but no booleans, nil values, or times.
type StringParser struct {
	// TrueStrings are parsed as boolean true.
	TrueStrings []string `json:"trueStrings" toml:"true_strings"`
	// FalseStrings are parsed as boolean false.
	FalseStrings []string `json:"falseStrings" toml:"false_strings"`
	// NilStrings mark missing values.
	NilStrings []string `json:"nilStrings" toml:"nil_strings"`
	// TimeFormats are tried in order by ParseTime.
	TimeFormats []string `json:"timeFormats" toml:"time_formats"`
	// GuessTimeFormat enables a fallback for ParseTime
	// that recognizes dates in many unambiguous formats
	// not listed in TimeFormats.
	GuessTimeFormat bool `json:"guessTimeFormat" toml:"guess_time_format"`
}

// NewStringParser returns a StringParser with the default
// true, false, and nil strings, the default time formats,
// and GuessTimeFormat enabled.
func NewStringParser() *StringParser {
	return &StringParser{
		TrueStrings:     []string{"true", "True", "TRUE"},
		FalseStrings:    []string{"false", "False", "FALSE"},
		NilStrings:      []string{"", "nil", "<nil>", "null", "NULL", "NaN", "NA", "N/A"},
		TimeFormats:     slices.Clone(timeFormats),
		GuessTimeFormat: true,
	}
}

// IsNil returns true if str is one of the NilStrings.
func (p *StringParser) IsNil(str string) bool {
	return slices.Contains(p.NilStrings, str)
}

func (p *StringParser) ParseInt(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}

func (p *StringParser) ParseUint(str string) (uint64, error) {
	return strconv.ParseUint(str, 10, 64)
}

// ParseFloat parses str as float64.
// A single comma without any dot is accepted as decimal separator.
func (p *StringParser) ParseFloat(str string) (float64, error) {
	f, err := strconv.ParseFloat(str, 64)
	if err == nil {
		return f, nil
	}
	if strings.Count(str, ",") == 1 && !strings.Contains(str, ".") {
		if f, e := strconv.ParseFloat(strings.Replace(str, ",", ".", 1), 64); e == nil {
			return f, nil
		}
	}
	return 0, err
}

func (p *StringParser) ParseBool(str string) (bool, error) {
	if slices.Contains(p.TrueStrings, str) {
		return true, nil
	}
	if slices.Contains(p.FalseStrings, str) {
		return false, nil
	}
	return false, fmt.Errorf("cannot parse %q as bool", str)
}

// ParseTime tries the TimeFormats in order and,
// if GuessTimeFormat is set, falls back to guessing the format.
// Ambiguous dates like "02/03/2024" are rejected by the fallback.
func (p *StringParser) ParseTime(str string) (time.Time, error) {
	for _, format := range p.TimeFormats {
		if t, err := time.Parse(format, str); err == nil {
			return t, nil
		}
	}
	if p.GuessTimeFormat && !isPlainNumber(str) {
		if t, err := dateparse.ParseStrict(str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as time", str)
}

func (p *StringParser) ParseDuration(str string) (time.Duration, error) {
	return time.ParseDuration(str)
}

// isPlainNumber keeps numbers from being guessed as Unix timestamps.
func isPlainNumber(str string) bool {
	_, err := strconv.ParseFloat(str, 64)
	return err == nil
}

var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	"02.01.2006 15:04:05",
	"02.01.2006",
}
