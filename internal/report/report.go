// Package report renders analysis results as human-readable text, either
// styled for terminals or plain for chat delivery.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"srsignal/internal/domain"
)

var signalEmoji = map[domain.Signal]string{
	domain.SignalStrongBuy:  "🚀",
	domain.SignalBuy:        "🟢",
	domain.SignalWeakBuy:    "🟡",
	domain.SignalHold:       "⏸",
	domain.SignalWeakSell:   "🟠",
	domain.SignalSell:       "🔴",
	domain.SignalStrongSell: "💥",
	domain.SignalError:      "❌",
}

var trendEmoji = map[domain.Trend]string{
	domain.TrendStrongUp:   "📈📈",
	domain.TrendWeakUp:     "📈",
	domain.TrendRanging:    "➡️",
	domain.TrendWeakDown:   "📉",
	domain.TrendStrongDown: "📉📉",
}

var signalColors = map[domain.Signal]lipgloss.Color{
	domain.SignalStrongBuy:  lipgloss.Color("42"),
	domain.SignalBuy:        lipgloss.Color("40"),
	domain.SignalWeakBuy:    lipgloss.Color("107"),
	domain.SignalHold:       lipgloss.Color("245"),
	domain.SignalWeakSell:   lipgloss.Color("215"),
	domain.SignalSell:       lipgloss.Color("203"),
	domain.SignalStrongSell: lipgloss.Color("196"),
	domain.SignalError:      lipgloss.Color("160"),
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

// Format renders a terminal report with lipgloss styling.
func Format(result *domain.AnalysisResult) string {
	return render(result, true)
}

// Plain renders the same report without styling, suitable for notifications.
func Plain(result *domain.AnalysisResult) string {
	return render(result, false)
}

func render(result *domain.AnalysisResult, styled bool) string {
	if result.Signal == domain.SignalError {
		return fmt.Sprintf("❌ %s: %s", result.Symbol, result.Err)
	}

	var b strings.Builder
	divider := strings.Repeat("=", 50)

	header := fmt.Sprintf("%s %s - %s (%d%%)",
		signalEmoji[result.Signal], result.Symbol, result.Signal, result.Confidence)
	if styled {
		header = lipgloss.NewStyle().
			Bold(true).
			Foreground(signalColors[result.Signal]).
			Render(header)
	}

	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", divider, header, divider)

	ind := result.Indicators
	fmt.Fprintf(&b, "💰 Price: $%.2f\n", result.Price)
	fmt.Fprintf(&b, "%s Trend: %s\n", trendEmoji[result.Trend], titleCase(string(result.Trend)))
	fmt.Fprintf(&b, "📊 Volume: %s (%.1fx avg)\n\n", titleCase(string(ind.Volume.Status)), ind.Volume.Ratio)

	fmt.Fprintf(&b, "📉 EMA20: $%.2f\n", ind.EMA20)
	fmt.Fprintf(&b, "📉 EMA50: $%.2f\n", ind.EMA50)
	fmt.Fprintf(&b, "📉 EMA200: $%.2f\n\n", ind.EMA200)

	fmt.Fprintf(&b, "⚡ RSI: %.1f\n", ind.RSI)
	fmt.Fprintf(&b, "📊 MACD: %s (H: %.4f)\n", titleCase(string(ind.MACD.Status)), ind.MACD.Histogram)
	fmt.Fprintf(&b, "📏 ATR: $%.2f\n", ind.ATR)

	if s := result.Support; s != nil {
		fmt.Fprintf(&b, "\n🟢 Support: $%.2f (%.1f ATR - %s)", s.Level, s.DistanceATR, s.Proximity)
	}
	if r := result.Resistance; r != nil {
		fmt.Fprintf(&b, "\n🔴 Resistance: $%.2f (%.1f ATR - %s)", r.Level, r.DistanceATR, r.Proximity)
	}
	if result.Flip.Detected {
		flipMark := "🔄🟢"
		if result.Flip.Type == domain.FlipBearish {
			flipMark = "🔄🔴"
		}
		fmt.Fprintf(&b, "\n%s S/R Flip: %s at $%.2f", flipMark, titleCase(string(result.Flip.Type)), result.Flip.Level)
	}

	if len(result.Reasons) > 0 {
		b.WriteString("\n\n📋 Reasons:")
		for _, reason := range result.Reasons {
			fmt.Fprintf(&b, "\n  ✓ %s", reason)
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n\n⚠️ Warnings:")
		for _, warning := range result.Warnings {
			line := fmt.Sprintf("\n  ⚠ %s", warning)
			if styled {
				line = "\n" + warnStyle.Render(fmt.Sprintf("  ⚠ %s", warning))
			}
			b.WriteString(line)
		}
	}

	fmt.Fprintf(&b, "\n\n🔢 Scores: Bull %d | Bear %d | Net %+d\n%s",
		result.Scores.Bullish, result.Scores.Bearish, result.Scores.Net, divider)

	return b.String()
}

// titleCase converts labels like "strong_up" to "Strong Up".
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
