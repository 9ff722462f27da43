package indicators

import (
	"stockscope/internal/analysis"
	"stockscope/internal/models"
)

// Frame is a bar series augmented with its derived per-bar columns. Each
// analysis invocation builds its own frame and discards it once the summary
// is extracted; frames are never shared between invocations.
type Frame struct {
	Bars models.BarSeries

	RSI       []float64
	RSISignal []analysis.Signal

	MACD          []float64
	MACDSignal    []float64
	MACDHistogram []float64
	MACDCross     []analysis.CrossSignal

	BBUpper  []float64
	BBMiddle []float64
	BBLower  []float64
	BBWidth  []float64
	BBSignal []analysis.Signal

	VolumeMA    []float64
	VolumeSpike []bool
	OBV         []float64

	SMA20 []float64
	SMA50 []float64
}

// NewFrame creates an empty frame for the given series.
func NewFrame(bars models.BarSeries) *Frame {
	return &Frame{Bars: bars}
}

// SetRSI attaches RSI columns.
func (f *Frame) SetRSI(r *RSIResult) {
	f.RSI = r.Values
	f.RSISignal = r.Signals
}

// SetMACD attaches MACD columns.
func (f *Frame) SetMACD(m *MACDResult) {
	f.MACD = m.Line
	f.MACDSignal = m.Signal
	f.MACDHistogram = m.Histogram
	f.MACDCross = m.Cross
}

// SetBollinger attaches Bollinger Band columns.
func (f *Frame) SetBollinger(b *BollingerResult) {
	f.BBUpper = b.Upper
	f.BBMiddle = b.Middle
	f.BBLower = b.Lower
	f.BBWidth = b.Width
	f.BBSignal = b.Signals
}

// SetVolume attaches volume columns.
func (f *Frame) SetVolume(v *VolumeResult) {
	f.VolumeMA = v.MA
	f.VolumeSpike = v.Spikes
	f.OBV = v.OBV
}

// Len returns the number of bars in the frame.
func (f *Frame) Len() int {
	return len(f.Bars)
}
