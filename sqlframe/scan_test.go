package sqlframe

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-gridview"
)

func TestQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "score", "created", "blob"}).
		AddRow(int64(1), []byte("Alice"), 1.5, created, []byte{0xff, 0x00}).
		AddRow(int64(2), nil, nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	frame, err := Query(context.Background(), db, "users", "SELECT * FROM users WHERE id > ?", 0)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "users", frame.Title())
	assert.Equal(t, []string{"id", "name", "score", "created", "blob"}, frame.Columns())
	assert.Equal(t, 2, frame.NumRows())
	assert.Equal(t, []any{"Alice", nil}, frame.Cols[1].Values)
	assert.Equal(t, []byte{0xff, 0x00}, frame.Cols[4].Values[0])

	assert.Equal(t, []gridview.ColumnType{
		{Field: "id", Type: gridview.TagInteger},
		{Field: "name", Type: gridview.TagString},
		{Field: "score", Type: gridview.TagFloat},
		{Field: "created", Type: gridview.TagDate},
		{Field: "blob"},
	}, gridview.ClassifyColumns(frame))
}

func TestQuery_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT n").WillReturnRows(sqlmock.NewRows([]string{"n"}))

	frame, err := Query(context.Background(), db, "", "SELECT n")
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, frame.Columns())
	assert.Zero(t, frame.NumRows())
}

func TestQuery_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT 1").WillReturnError(assert.AnError)
	_, err = Query(context.Background(), db, "", "SELECT 1")
	require.ErrorIs(t, err, assert.AnError)

	rows := sqlmock.NewRows([]string{"n"}).
		AddRow(1).
		AddRow(2).
		RowError(1, assert.AnError)
	mock.ExpectQuery("SELECT n").WillReturnRows(rows)
	_, err = Query(context.Background(), db, "", "SELECT n")
	require.ErrorIs(t, err, assert.AnError)
}
