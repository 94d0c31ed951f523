package domain

import (
	"encoding/json"
	"fmt"
)

// Signal is the graded trading recommendation produced by the analyzer.
// The zero value is SignalHold. Values are ordered by display rank:
// buys first, then hold, then sells, then the batch error placeholder.
type Signal int

const (
	SignalStrongBuy Signal = iota - 3
	SignalBuy
	SignalWeakBuy
	SignalHold
	SignalWeakSell
	SignalSell
	SignalStrongSell
	SignalError
)

var signalNames = map[Signal]string{
	SignalStrongBuy:  "STRONG_BUY",
	SignalBuy:        "BUY",
	SignalWeakBuy:    "WEAK_BUY",
	SignalHold:       "HOLD",
	SignalWeakSell:   "WEAK_SELL",
	SignalSell:       "SELL",
	SignalStrongSell: "STRONG_SELL",
	SignalError:      "ERROR",
}

// String returns the canonical upper-case name.
func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

// Rank returns the display ordering used when sorting batch results:
// STRONG_BUY first, ERROR last.
func (s Signal) Rank() int {
	return int(s - SignalStrongBuy)
}

// IsBuy reports whether the signal is on the buy side.
func (s Signal) IsBuy() bool {
	return s == SignalStrongBuy || s == SignalBuy || s == SignalWeakBuy
}

// IsSell reports whether the signal is on the sell side.
func (s Signal) IsSell() bool {
	return s == SignalStrongSell || s == SignalSell || s == SignalWeakSell
}

// ParseSignal converts the canonical name back into a Signal.
func ParseSignal(name string) (Signal, error) {
	for sig, n := range signalNames {
		if n == name {
			return sig, nil
		}
	}
	return SignalError, fmt.Errorf("unknown signal %q", name)
}

// MarshalJSON encodes the signal as its canonical name.
func (s Signal) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a canonical signal name.
func (s *Signal) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	sig, err := ParseSignal(name)
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

// Trend is the qualitative trend label derived from the EMA stack.
type Trend string

const (
	TrendStrongUp   Trend = "strong_up"
	TrendWeakUp     Trend = "weak_up"
	TrendRanging    Trend = "ranging"
	TrendWeakDown   Trend = "weak_down"
	TrendStrongDown Trend = "strong_down"
)

// Scores holds the accumulated bullish/bearish point totals.
type Scores struct {
	Bullish int `json:"bullish"`
	Bearish int `json:"bearish"`
	Net     int `json:"net"`
}
