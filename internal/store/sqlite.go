package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"stockscope/internal/errors"
	"stockscope/internal/models"
)

// SQLiteStore implements BarStore on a local SQLite database. Bars are
// keyed by (symbol, date); re-importing a day replaces it.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures
// the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.NewStoreError("open", "", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.NewStoreError("init schema", "", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS bars (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		date DATETIME NOT NULL,
		open REAL NOT NULL,
		high REAL NOT NULL,
		low REAL NOT NULL,
		close REAL NOT NULL,
		volume INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(symbol, date)
	);

	CREATE INDEX IF NOT EXISTS idx_bars_symbol ON bars(symbol);
	CREATE INDEX IF NOT EXISTS idx_bars_date ON bars(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveBars inserts or replaces the given bars for symbol in one
// transaction.
func (s *SQLiteStore) SaveBars(ctx context.Context, symbol string, bars models.BarSeries) error {
	if len(bars) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError("begin transaction", symbol, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO bars (symbol, date, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.NewStoreError("prepare insert", symbol, err)
	}
	defer stmt.Close()

	for _, b := range bars {
		if _, err := stmt.ExecContext(ctx, symbol, b.Date.UTC(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return errors.NewStoreError("insert bar", symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError("commit", symbol, err)
	}
	return nil
}

// LoadBars returns every stored bar for symbol in ascending date order.
// A symbol with no bars yields ErrDataNotFound.
func (s *SQLiteStore) LoadBars(ctx context.Context, symbol string) (models.BarSeries, error) {
	return s.QueryBars(ctx, BarFilter{Symbol: symbol})
}

// QueryBars returns the bars matching the filter in ascending date order.
func (s *SQLiteStore) QueryBars(ctx context.Context, filter BarFilter) (models.BarSeries, error) {
	query := `
		SELECT date, open, high, low, close, volume
		FROM bars WHERE symbol = ?`
	args := []interface{}{filter.Symbol}

	if !filter.From.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query += " AND date <= ?"
		args = append(args, filter.To.UTC())
	}
	query += " ORDER BY date ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("query bars", filter.Symbol, err)
	}
	defer rows.Close()

	var bars models.BarSeries
	for rows.Next() {
		var b models.Bar
		if err := rows.Scan(&b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, errors.NewStoreError("scan bar", filter.Symbol, err)
		}
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("iterate bars", filter.Symbol, err)
	}

	if len(bars) == 0 {
		return nil, errors.Wrapf(errors.ErrDataNotFound, "no bars stored for %s", filter.Symbol)
	}
	return bars, nil
}

// ListSymbols returns the distinct symbols with stored bars.
func (s *SQLiteStore) ListSymbols(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT symbol, COUNT(*) FROM bars GROUP BY symbol ORDER BY symbol ASC
	`)
	if err != nil {
		return nil, errors.NewStoreError("list symbols", "", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		var count int
		if err := rows.Scan(&symbol, &count); err != nil {
			return nil, errors.NewStoreError("scan symbol", "", err)
		}
		symbols = append(symbols, symbol)
	}
	return symbols, rows.Err()
}

// CountBars returns how many bars are stored for symbol.
func (s *SQLiteStore) CountBars(ctx context.Context, symbol string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bars WHERE symbol = ?
	`, symbol).Scan(&count)
	if err != nil {
		return 0, errors.NewStoreError("count bars", symbol, err)
	}
	return count, nil
}

// DeleteBars removes all bars for symbol and reports how many were
// deleted.
func (s *SQLiteStore) DeleteBars(ctx context.Context, symbol string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bars WHERE symbol = ?`, symbol)
	if err != nil {
		return 0, errors.NewStoreError("delete bars", symbol, err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// Freshness returns the date of the most recent stored bar for symbol,
// or the zero time when none exist.
func (s *SQLiteStore) Freshness(ctx context.Context, symbol string) (time.Time, error) {
	var latest sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(date) FROM bars WHERE symbol = ?
	`, symbol).Scan(&latest)
	if err != nil && err != sql.ErrNoRows {
		return time.Time{}, errors.NewStoreError("freshness", symbol, err)
	}
	if !latest.Valid {
		return time.Time{}, nil
	}
	return latest.Time, nil
}
