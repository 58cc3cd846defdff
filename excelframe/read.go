// Package excelframe reads Excel sheets (.xlsx, .xlsm, .xltm, .xltx)
// into gridview.Frame values titled with the sheet name.
//
// The first non empty row of a sheet is the header,
// empty rows and columns at the edges are removed,
// and column types are inferred from the cell strings
// with a gridview.StringParser.
package excelframe

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-gridview"
)

// Config controls how sheets are read.
type Config struct {
	// RawCellValues reads the unformatted cell values
	// instead of the values formatted with the cell number format.
	RawCellValues bool
	// Parser infers the column types.
	// If nil, gridview.NewStringParser() is used.
	Parser *gridview.StringParser
}

func (c *Config) parser() *gridview.StringParser {
	if c == nil || c.Parser == nil {
		return gridview.NewStringParser()
	}
	return c.Parser
}

func (c *Config) options() excelize.Options {
	return excelize.Options{RawCellValue: c != nil && c.RawCellValues}
}

// Read returns a Frame for every non empty sheet
// of the workbook read from reader.
func Read(reader io.Reader, config *Config) (frames []*gridview.Frame, err error) {
	f, err := excelize.OpenReader(reader, config.options())
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return readSheets(f, config)
}

// ReadFile returns a Frame for every non empty sheet
// of a local workbook file.
func ReadFile(filename string, config *Config) (frames []*gridview.Frame, err error) {
	f, err := excelize.OpenFile(filename, config.options())
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return readSheets(f, config)
}

// ReadSheet returns the named sheet of the workbook read from reader.
// An empty sheet name selects the first sheet.
func ReadSheet(reader io.Reader, sheet string, config *Config) (frame *gridview.Frame, err error) {
	f, err := excelize.OpenReader(reader, config.options())
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
		}
	}
	return readSheet(f, sheet, config)
}

func readSheets(f *excelize.File, config *Config) ([]*gridview.Frame, error) {
	var frames []*gridview.Frame
	for _, sheet := range f.GetSheetList() {
		frame, err := readSheet(f, sheet, config)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				continue
			}
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func readSheet(f *excelize.File, sheet string, config *Config) (*gridview.Frame, error) {
	rows, err := f.GetRows(sheet, config.options())
	if err != nil {
		return nil, err
	}
	rows = gridview.RemoveEmptyStringRows(rows)
	numCols := gridview.RemoveEmptyStringColumns(rows)
	if len(rows) == 0 || numCols == 0 {
		return nil, ErrEmptySheet
	}

	header := make([]string, numCols)
	copy(header, rows[0])
	for i, name := range header {
		if name == "" {
			// Column letter of the position after trimming
			header[i], err = excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
		}
	}
	return gridview.FrameFromStrings(sheet, header, rows[1:], config.parser())
}
