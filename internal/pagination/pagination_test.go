package pagination

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, Limit: DefaultLimit}},
		{"explicit", "page=3&limit=15", Params{Page: 3, Limit: 15}},
		{"limit clamped to max", "limit=500", Params{Page: 1, Limit: MaxLimit}},
		{"limit exactly max", "limit=50", Params{Page: 1, Limit: 50}},
		{"zero limit uses default", "limit=0", Params{Page: 1, Limit: DefaultLimit}},
		{"negative limit uses default", "limit=-4", Params{Page: 1, Limit: DefaultLimit}},
		{"non numeric limit uses default", "limit=abc", Params{Page: 1, Limit: DefaultLimit}},
		{"zero page", "page=0", Params{Page: 1, Limit: DefaultLimit}},
		{"negative page", "page=-2", Params{Page: 1, Limit: DefaultLimit}},
		{"non numeric page", "page=x&limit=5", Params{Page: 1, Limit: 5}},
		{"huge page clamped", "page=9223372036854775807&limit=50", Params{Page: MaxPage, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Parse(q, DefaultLimit))
		})
	}
}

func TestParse_HistoryDefault(t *testing.T) {
	assert.Equal(t, Params{Page: 2, Limit: DefaultHistoryLimit}, Parse(url.Values{"page": {"2"}}, DefaultHistoryLimit))
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, New(1, 20, DefaultLimit).Offset())
	assert.Equal(t, 40, New(3, 20, DefaultLimit).Offset())
	assert.Equal(t, 10, New(2, 10, DefaultLimit).Offset())

	far := New(math.MaxInt, MaxLimit, DefaultLimit)
	assert.Positive(t, far.Offset())
	assert.Equal(t, (MaxPage-1)*MaxLimit, far.Offset())
}

func TestTrim(t *testing.T) {
	page := Trim([]int{1, 2, 3}, 2)
	assert.Equal(t, []int{1, 2}, page.Items)
	assert.True(t, page.HasMore)

	page = Trim([]int{1, 2}, 2)
	assert.Equal(t, []int{1, 2}, page.Items)
	assert.False(t, page.HasMore)

	page = Trim[int](nil, 2)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

type row struct {
	ID string `db:"id"`
}

func newSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id").From("users").OrderBy("created_at DESC", "id DESC")
}

func TestFetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	tests := []struct {
		name        string
		total       int
		params      Params
		wantLen     int
		wantHasMore bool
	}{
		{"full page with more", 3, New(1, 2, DefaultLimit), 2, true},
		{"exact last page", 2, New(2, 2, DefaultLimit), 2, false},
		{"short last page", 1, New(3, 2, DefaultLimit), 1, false},
		{"past the end", 0, New(9, 2, DefaultLimit), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := sqlmock.NewRows([]string{"id"})
			for i := 0; i < tt.total; i++ {
				rows.AddRow("id")
			}
			mock.ExpectQuery(`SELECT id FROM users ORDER BY created_at DESC, id DESC LIMIT 3 OFFSET \d+`).
				WillReturnRows(rows)

			page, err := Fetch[row](context.Background(), sqlxDB, newSelect(), tt.params)
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantHasMore, page.HasMore)
			assert.NotNil(t, page.Items)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM users").WillReturnError(sqlmock.ErrCancelled)

	_, err = Fetch[row](context.Background(), sqlx.NewDb(db, "sqlmock"), newSelect(), New(1, 5, DefaultLimit))
	assert.Error(t, err)
}

func TestFetch_HugePage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	q, err := url.ParseQuery("page=9223372036854775807&limit=50")
	require.NoError(t, err)
	p := Parse(q, DefaultLimit)

	mock.ExpectQuery(fmt.Sprintf(`LIMIT 51 OFFSET %d$`, (MaxPage-1)*MaxLimit)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	page, err := Fetch[row](context.Background(), sqlx.NewDb(db, "sqlmock"), newSelect(), p)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
