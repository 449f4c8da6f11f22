// Package pagination implements offset paging with a one-row look-ahead probe.
package pagination

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/logger"
)

// Limits shared by every paginated endpoint.
const (
	DefaultLimit        = 20
	DefaultHistoryLimit = 10
	MaxLimit            = 50

	// MaxPage keeps (page-1)*limit inside int for any allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// New clamps raw values: page below 1 becomes 1, page above MaxPage becomes
// MaxPage, limit below 1 becomes defaultLimit and limit above MaxLimit becomes MaxLimit.
func New(page, limit, defaultLimit int) Params {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Parse reads "page" and "limit" from a query string. Values that are
// not integers are treated as absent.
func Parse(q url.Values, defaultLimit int) Params {
	page, err := strconv.Atoi(strings.TrimSpace(q.Get("page")))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(strings.TrimSpace(q.Get("limit")))
	if err != nil {
		limit = defaultLimit
	}
	return New(page, limit, defaultLimit)
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one window of rows.
type Page[T any] struct {
	Items   []T
	HasMore bool
}

// Trim turns an overfetched slice of up to limit+1 rows into a page.
func Trim[T any](rows []T, limit int) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	if len(rows) > limit {
		return Page[T]{Items: rows[:limit], HasMore: true}
	}
	return Page[T]{Items: rows, HasMore: false}
}

// Fetch runs sb with the page offset and a limit of one extra row, then
// trims the probe row off. The caller owns filtering, projection and order.
func Fetch[T any](ctx context.Context, db sqlx.QueryerContext, sb sq.SelectBuilder, p Params) (Page[T], error) {
	query, args, err := sb.
		Offset(uint64(p.Offset())).
		Limit(uint64(p.Limit + 1)).
		ToSql()
	if err != nil {
		return Page[T]{}, err
	}

	var rows []T
	err = sqlx.SelectContext(ctx, db, &rows, query, args...)

	logger.FromContext(ctx).Infow("page fetched",
		"query", query,
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return Page[T]{}, err
	}

	return Trim(rows, p.Limit), nil
}
