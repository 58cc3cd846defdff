package arrowframe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/domonda/go-gridview"
)

// ReadParquet reads all row groups of a Parquet file into a Frame.
func ReadParquet(ctx context.Context, title string, r parquet.ReaderAtSeeker) (frame *gridview.Frame, err error) {
	pf, err := file.NewParquetReader(r, file.WithReadProps(parquet.NewReaderProperties(nil)))
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, pf.Close())
	}()

	reader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return nil, err
	}
	tbl, err := reader.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	defer tbl.Release()

	return FromTable(title, tbl)
}

// ReadParquetFile reads a local Parquet file into a Frame
// titled with the file name without extension.
func ReadParquetFile(ctx context.Context, filename string) (frame *gridview.Frame, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	title := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ReadParquet(ctx, title, f)
}
