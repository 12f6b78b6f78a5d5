package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	localizer "github.com/goliatone/go-localizer"
)

// PGLoader serves lookups from a PostgreSQL catalog table with columns
// (key, locale, style, value). Style-less rows store locale/style as empty
// strings.
type PGLoader struct {
	pool  *pgxpool.Pool
	table string
}

var _ localizer.Loader = (*PGLoader)(nil)

// PGOption configures a PGLoader.
type PGOption func(*PGLoader)

// PGWithTable overrides the default string_resources table name.
func PGWithTable(table string) PGOption {
	return func(l *PGLoader) {
		if table != "" {
			l.table = table
		}
	}
}

// NewPGLoader constructs a loader backed by pool.
func NewPGLoader(pool *pgxpool.Pool, opts ...PGOption) *PGLoader {
	l := &PGLoader{pool: pool, table: "string_resources"}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// NewPGPool creates a pgx connection pool and verifies connectivity.
func NewPGPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Name identifies the loader in logs and traces.
func (l *PGLoader) Name() string {
	return "postgres"
}

// Load queries one variant candidate at a time, most specific first.
func (l *PGLoader) Load(ctx context.Context, q localizer.Query) (string, bool, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1 AND locale = $2 AND style = $3`, l.table)
	for _, v := range Candidates(q.Locale, q.Style) {
		var value string
		err := l.pool.QueryRow(ctx, query, q.Key, v.Locale, v.Style).Scan(&value)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("load string resource %q: %w", q.Key, err)
		}
		return value, true, nil
	}
	return "", false, nil
}
