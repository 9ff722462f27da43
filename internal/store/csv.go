package store

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"stockscope/internal/errors"
	"stockscope/internal/models"
)

// csvDateLayout is the expected date format in CSV files.
const csvDateLayout = "2006-01-02"

// CSVSource loads bars from a CSV file with the header
// Date,Open,High,Low,Close,Volume. The symbol argument to LoadBars is
// ignored; one file holds one series.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV-backed bar source for the given file.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// LoadBars reads and parses the whole file. Rows must appear in
// ascending date order; validation happens downstream in
// models.NewBarSeries.
func (c *CSVSource) LoadBars(ctx context.Context, _ string) (models.BarSeries, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, errors.NewStoreError("open csv", c.Path, err)
	}
	defer f.Close()
	return ReadBarsCSV(f)
}

// ReadBarsCSV parses bars from r. The first row must be the header
// Date,Open,High,Low,Close,Volume (case-insensitive).
func ReadBarsCSV(r io.Reader) (models.BarSeries, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewMalformedSeriesError(-1, "empty csv file")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var bars models.BarSeries
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewMalformedSeriesError(row, err.Error())
		}

		bar, err := parseBar(record, cols, row)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
		row++
	}

	return bars, nil
}

type csvColumns struct {
	date, open, high, low, close, volume int
}

func mapColumns(header []string) (csvColumns, error) {
	cols := csvColumns{date: -1, open: -1, high: -1, low: -1, close: -1, volume: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "open":
			cols.open = i
		case "high":
			cols.high = i
		case "low":
			cols.low = i
		case "close":
			cols.close = i
		case "volume":
			cols.volume = i
		}
	}
	if cols.date < 0 || cols.open < 0 || cols.high < 0 || cols.low < 0 || cols.close < 0 || cols.volume < 0 {
		return cols, errors.NewMalformedSeriesError(-1, "csv header must contain Date,Open,High,Low,Close,Volume")
	}
	return cols, nil
}

func parseBar(record []string, cols csvColumns, row int) (models.Bar, error) {
	var bar models.Bar

	max := cols.date
	for _, i := range []int{cols.open, cols.high, cols.low, cols.close, cols.volume} {
		if i > max {
			max = i
		}
	}
	if len(record) <= max {
		return bar, errors.NewMalformedSeriesError(row, "row has too few columns")
	}

	date, err := time.Parse(csvDateLayout, strings.TrimSpace(record[cols.date]))
	if err != nil {
		return bar, errors.NewMalformedSeriesError(row, "invalid date: "+record[cols.date])
	}
	bar.Date = date

	for _, field := range []struct {
		idx  int
		dst  *float64
		name string
	}{
		{cols.open, &bar.Open, "open"},
		{cols.high, &bar.High, "high"},
		{cols.low, &bar.Low, "low"},
		{cols.close, &bar.Close, "close"},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[field.idx]), 64)
		if err != nil {
			return bar, errors.NewMalformedSeriesError(row, "invalid "+field.name+": "+record[field.idx])
		}
		*field.dst = v
	}

	vol, err := strconv.ParseInt(strings.TrimSpace(record[cols.volume]), 10, 64)
	if err != nil {
		return bar, errors.NewMalformedSeriesError(row, "invalid volume: "+record[cols.volume])
	}
	bar.Volume = vol

	return bar, nil
}
