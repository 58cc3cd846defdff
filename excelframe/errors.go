package excelframe

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet is returned for sheets without any non empty cell.
var ErrEmptySheet = errors.New("empty sheet")

// ErrSheetNotExist is returned by excelize for unknown sheet names.
type ErrSheetNotExist = excelize.ErrSheetNotExist
