// Package store provides bar series persistence and loading.
package store

import (
	"context"
	"time"

	"stockscope/internal/models"
)

// BarSource loads historical bars for a symbol. Implementations must
// return bars in ascending date order.
type BarSource interface {
	LoadBars(ctx context.Context, symbol string) (models.BarSeries, error)
}

// BarStore is a BarSource that can also persist bars.
type BarStore interface {
	BarSource
	SaveBars(ctx context.Context, symbol string, bars models.BarSeries) error
	ListSymbols(ctx context.Context) ([]string, error)
	DeleteBars(ctx context.Context, symbol string) (int64, error)
	Freshness(ctx context.Context, symbol string) (time.Time, error)
	Close() error
}

// BarFilter narrows a bar query to a date range. Zero bounds are open.
type BarFilter struct {
	Symbol string
	From   time.Time
	To     time.Time
	Limit  int
}
