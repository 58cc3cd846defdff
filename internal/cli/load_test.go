package cli

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-gridview"
)

const pricesCSV = "Item;Price;Date\nApple;1,25;2024-01-02\nPear;0,99;2024-01-03\n"

func TestLoadFrame_CSV(t *testing.T) {
	filename := writeFile(t, "prices.csv", pricesCSV)

	frame, err := loadFrame(context.Background(), filename, &sourceFlags{}, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "prices", frame.Title())
	assert.Equal(t, []string{"Item", "Price", "Date"}, frame.Columns())
	assert.Equal(t, []any{1.25, 0.99}, frame.Cols[1].Values)

	config := defaultConfig()
	config.Title = "Fruit"
	config.Index = []string{"Item"}
	frame, err = loadFrame(context.Background(), filename, &sourceFlags{}, config)
	require.NoError(t, err)
	assert.Equal(t, "Fruit", frame.Title())
	assert.Equal(t, []string{"Price", "Date"}, frame.Columns())
	require.Len(t, frame.Index.Levels, 1)
	assert.Equal(t, "Item", frame.Index.Levels[0].Name)

	config.Index = nil
	config.Columns = []string{"Date", "Item"}
	config.DropColumns = []string{"Item"}
	frame, err = loadFrame(context.Background(), filename, &sourceFlags{}, config)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date"}, frame.Columns())

	config.Columns = nil
	config.Index = []string{"Missing"}
	_, err = loadFrame(context.Background(), filename, &sourceFlags{}, config)
	require.ErrorIs(t, err, gridview.ErrColumnNotFound)
}

func TestLoadFrame_Excel(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("Stock")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Stock", "A1", &[]any{"Item", "Count"}))
	require.NoError(t, f.SetSheetRow("Stock", "A2", &[]any{"Apple", 3}))
	filename := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(filename))
	require.NoError(t, f.Close())

	frame, err := loadFrame(context.Background(), filename, &sourceFlags{sheet: "Stock"}, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "Stock", frame.Title())
	assert.Equal(t, []any{int64(3)}, frame.Cols[1].Values)
}

func TestLoadFrame_SQLite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "shop.db")
	db, err := sql.Open("sqlite3", filename)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE orders (id INTEGER PRIMARY KEY, item TEXT, price REAL);
		INSERT INTO orders (item, price) VALUES ('Apple', 1.25), ('Pear', NULL);
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src := &sourceFlags{sqlite: filename, query: "SELECT * FROM orders ORDER BY id"}
	frame, err := loadFrame(context.Background(), "", src, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "shop", frame.Title())
	assert.Equal(t, []string{"id", "item", "price"}, frame.Columns())
	assert.Equal(t, []any{int64(1), int64(2)}, frame.Cols[0].Values)
	assert.Equal(t, []any{"Apple", "Pear"}, frame.Cols[1].Values)
	assert.Equal(t, []any{1.25, nil}, frame.Cols[2].Values)

	_, err = loadFrame(context.Background(), "", &sourceFlags{sqlite: filename}, defaultConfig())
	require.Error(t, err, "missing query")
}

func TestLoadFrame_Unsupported(t *testing.T) {
	filename := writeFile(t, "data.json", "[]")
	_, err := loadFrame(context.Background(), filename, &sourceFlags{}, defaultConfig())
	require.ErrorIs(t, err, ErrUnsupportedInput)
}
