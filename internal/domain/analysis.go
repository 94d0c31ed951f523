package domain

import "time"

// PivotType marks a swing pivot as a local high or low.
type PivotType string

const (
	PivotHigh PivotType = "high"
	PivotLow  PivotType = "low"
)

// PivotPoint is a confirmed local price extreme.
type PivotPoint struct {
	Index int       `json:"index"`
	Price float64   `json:"price"`
	Type  PivotType `json:"type"`
	Time  time.Time `json:"time"`
}

// LevelType classifies an S/R level relative to the latest close.
type LevelType string

const (
	LevelSupport    LevelType = "support"
	LevelResistance LevelType = "resistance"
)

// SRLevel is a clustered price zone where multiple pivots recurred.
type SRLevel struct {
	Level       float64      `json:"level"`
	Strength    int          `json:"strength"`
	Type        LevelType    `json:"type"`
	HighTouches int          `json:"high_touches"`
	LowTouches  int          `json:"low_touches"`
	Pivots      []PivotPoint `json:"pivots"`
}

// FlipType marks the direction of a support/resistance role reversal.
type FlipType string

const (
	FlipBullish FlipType = "bullish"
	FlipBearish FlipType = "bearish"
	FlipNone    FlipType = ""
)

// FlipResult reports a detected S/R role flip.
type FlipResult struct {
	Detected   bool     `json:"detected"`
	Type       FlipType `json:"type,omitempty"`
	Level      float64  `json:"level,omitempty"`
	Confidence int      `json:"confidence"`
}

// Proximity buckets the distance to an S/R level in ATR units.
type Proximity string

const (
	ProximityVeryClose Proximity = "very_close"
	ProximityClose     Proximity = "close"
	ProximityFar       Proximity = "far"
)

// SRProximity describes how near the current price sits to an S/R level.
type SRProximity struct {
	Level       float64   `json:"level"`
	Distance    float64   `json:"distance"`
	DistanceATR float64   `json:"distance_atr"`
	Proximity   Proximity `json:"proximity"`
}

// MACDStatus is the momentum reading of the MACD histogram.
type MACDStatus string

const (
	MACDBullish MACDStatus = "bullish"
	MACDBearish MACDStatus = "bearish"
	MACDNeutral MACDStatus = "neutral"
)

// Crossover marks a fresh MACD line/signal cross on the latest step.
type Crossover string

const (
	CrossoverBullish Crossover = "bullish"
	CrossoverBearish Crossover = "bearish"
	CrossoverNone    Crossover = ""
)

// MACDSnapshot carries the latest MACD state.
type MACDSnapshot struct {
	Line          float64    `json:"line"`
	Signal        float64    `json:"signal"`
	Histogram     float64    `json:"histogram"`
	PrevHistogram float64    `json:"prev_histogram"`
	Status        MACDStatus `json:"status"`
	Crossover     Crossover  `json:"crossover,omitempty"`
}

// VolumeStatus buckets current volume against its moving average.
type VolumeStatus string

const (
	VolumeHigh   VolumeStatus = "high"
	VolumeNormal VolumeStatus = "normal"
	VolumeLow    VolumeStatus = "low"
)

// VolumeSnapshot carries the latest volume reading.
type VolumeSnapshot struct {
	Current float64      `json:"current"`
	Average float64      `json:"average"`
	Ratio   float64      `json:"ratio"`
	Status  VolumeStatus `json:"status"`
}

// BollingerSnapshot carries the latest Bollinger band values.
type BollingerSnapshot struct {
	Lower     float64 `json:"lower"`
	Mid       float64 `json:"mid"`
	Upper     float64 `json:"upper"`
	Bandwidth float64 `json:"bandwidth"`
}

// TrendSnapshot is the trend classifier output.
type TrendSnapshot struct {
	EMA20          float64 `json:"ema20"`
	EMA50          float64 `json:"ema50"`
	EMA200         float64 `json:"ema200"`
	Trend          Trend   `json:"trend"`
	Score          int     `json:"trend_score"`
	PriceVsEMA20   float64 `json:"price_vs_ema20"`
	PriceVsEMA50   float64 `json:"price_vs_ema50"`
	PriceVsEMA200  float64 `json:"price_vs_ema200"`
}

// IndicatorSnapshot bundles the latest value of every indicator the
// composite scorer consumes.
type IndicatorSnapshot struct {
	EMA20     float64           `json:"ema20"`
	EMA50     float64           `json:"ema50"`
	EMA200    float64           `json:"ema200"`
	RSI       float64           `json:"rsi"`
	ATR       float64           `json:"atr"`
	MACD      MACDSnapshot      `json:"macd"`
	Volume    VolumeSnapshot    `json:"volume"`
	Bollinger BollingerSnapshot `json:"bollinger"`
}

// AnalysisResult is the full outcome of one analysis call. It is created
// fresh per call and owned by the caller after return.
type AnalysisResult struct {
	ID               string            `json:"id"`
	Symbol           string            `json:"symbol"`
	Timeframe        string            `json:"timeframe"`
	Signal           Signal            `json:"signal"`
	Confidence       int               `json:"confidence"`
	Trend            Trend             `json:"trend,omitempty"`
	Price            float64           `json:"price"`
	Indicators       IndicatorSnapshot `json:"indicators"`
	Levels           []SRLevel         `json:"levels,omitempty"`
	Support          *SRProximity      `json:"support,omitempty"`
	Resistance       *SRProximity      `json:"resistance,omitempty"`
	Flip             FlipResult        `json:"sr_flip"`
	Scores           Scores            `json:"scores"`
	Reasons          []string          `json:"reasons,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
	InsufficientData bool              `json:"insufficient_data,omitempty"`
	Err              string            `json:"error,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}
