// Package models provides domain models for the analysis application.
package models

import (
	"time"

	"stockscope/internal/errors"
)

// Bar represents one daily OHLCV observation.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// BarSeries is a chronologically ordered sequence of bars. It is the input
// contract for every indicator: strictly increasing dates, positive prices,
// non-negative volumes.
type BarSeries []Bar

// NewBarSeries validates bars and returns them as a series.
func NewBarSeries(bars []Bar) (BarSeries, error) {
	s := BarSeries(bars)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the series against the input contract. It fails fast on
// the first violation so callers can reject bad input before any
// computation runs.
func (s BarSeries) Validate() error {
	if len(s) == 0 {
		return errors.NewMalformedSeriesError(-1, "series is empty")
	}
	for i, b := range s {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return errors.NewMalformedSeriesError(i, "price values must be positive")
		}
		if b.Volume < 0 {
			return errors.NewMalformedSeriesError(i, "volume must be non-negative")
		}
		if i > 0 && !s[i-1].Date.Before(b.Date) {
			return errors.NewMalformedSeriesError(i, "dates must be strictly increasing")
		}
	}
	return nil
}

// Last returns the most recent bar. The series must be non-empty.
func (s BarSeries) Last() Bar {
	return s[len(s)-1]
}

// Closes extracts close prices.
func (s BarSeries) Closes() []float64 {
	prices := make([]float64, len(s))
	for i, b := range s {
		prices[i] = b.Close
	}
	return prices
}

// Highs extracts high prices.
func (s BarSeries) Highs() []float64 {
	prices := make([]float64, len(s))
	for i, b := range s {
		prices[i] = b.High
	}
	return prices
}

// Lows extracts low prices.
func (s BarSeries) Lows() []float64 {
	prices := make([]float64, len(s))
	for i, b := range s {
		prices[i] = b.Low
	}
	return prices
}

// Volumes extracts volumes as float64 for rolling arithmetic.
func (s BarSeries) Volumes() []float64 {
	vols := make([]float64, len(s))
	for i, b := range s {
		vols[i] = float64(b.Volume)
	}
	return vols
}
