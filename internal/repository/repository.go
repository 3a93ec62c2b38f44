package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movie-admin/internal/admin"
	"movie-admin/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record violates a unique constraint")
)

// ListQuery is a normalized admin list request.
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	SortBy  string
	Order   string
	Filters map[string]string
}

func (q ListQuery) offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

type baseRepository struct {
	db      *database.Database
	admin   *admin.ModelAdmin
	timeout time.Duration
}

func newBaseRepository(db *database.Database, a *admin.ModelAdmin) baseRepository {
	return baseRepository{
		db:      db,
		admin:   a,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// list counts the rows matching q and loads the requested page into dest.
func (r *baseRepository) list(query *gorm.DB, q ListQuery, dest interface{}) (int64, error) {
	var total int64

	query = r.admin.ApplySearch(query, q.Search)
	query, err := r.admin.ApplyFilters(query, q.Filters)
	if err != nil {
		return 0, err
	}

	if err := query.Count(&total).Error; err != nil {
		return 0, translate(err)
	}
	if total == 0 {
		return 0, nil
	}

	query = r.admin.ApplyOrdering(query, q.SortBy, q.Order)
	if q.Limit > 0 {
		query = query.Offset(q.offset()).Limit(q.Limit)
	}
	if err := query.Find(dest).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	// sqlite reports unique violations only through the message
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}
