// Package setup implements the interactive configuration wizard.
package setup

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"srsignal/config"
	"srsignal/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

const generatedConfigFile = "config.gen.yaml"

// RunTUI launches the terminal configuration wizard and writes the resulting
// yaml file to config.gen.yaml.
func RunTUI() error {
	var (
		platform     string
		pairsInput   string
		timeframe    string
		tgToken      string
		tgChat       string
		pollInterval string
		confirm      bool
	)

	// defaults
	pairsInput = "BTC_USDT"
	timeframe = "1h"
	pollInterval = "0s"

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("SRSIGNAL CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Set up market analysis in a few steps.\n"))

	fmt.Println(stepStyle.Render("STEP 1: PLATFORM"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Exchange Platform").
				Options(
					huh.NewOption("Binance", "binance"),
					huh.NewOption("Bybit", "bybit"),
				).
				Value(&platform),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("SRSIGNAL CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 2: INSTRUMENTS"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pairs").
				Description("Comma-separated, each BASE_QUOTE (e.g. BTC_USDT,ETH_USDT)").
				Value(&pairsInput).
				Validate(validatePairs),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("SRSIGNAL CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 3: TIMEFRAME"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Candle Timeframe").
				Options(
					huh.NewOption("15 minutes", "15m"),
					huh.NewOption("1 hour", "1h"),
					huh.NewOption("4 hours", "4h"),
					huh.NewOption("1 day", "1d"),
				).
				Value(&timeframe),
			huh.NewInput().
				Title("Poll Interval").
				Description("Duration between runs (e.g. 15m); 0s analyzes once and exits").
				Value(&pollInterval).
				Validate(func(s string) error {
					_, err := time.ParseDuration(s)
					return err
				}),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("SRSIGNAL CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("STEP 4: NOTIFICATIONS"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Telegram Bot Token").
				Description("Leave empty to skip notifications").
				Value(&tgToken).
				EchoMode(huh.EchoModePassword),
			huh.NewInput().
				Title("Telegram Chat ID").
				Value(&tgChat),
		),
	).Run()
	if err != nil {
		return err
	}

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("SRSIGNAL CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := fmt.Sprintf(
		"Platform: %s\nPairs: %s\nTimeframe: %s\nPoll: %s\nTelegram: %s\n",
		platform, pairsInput, timeframe, pollInterval, telegramState(tgToken),
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save and run").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	interval, _ := time.ParseDuration(pollInterval)

	cfgTmp := config.ConfigTmp{
		Platform:      platform,
		Pairs:         splitPairs(pairsInput),
		Timeframe:     timeframe,
		PollInterval:  interval,
		TelegramToken: tgToken,
		TelegramChat:  tgChat,
	}

	data, err := yaml.Marshal(cfgTmp)
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}

	if err := os.WriteFile(generatedConfigFile, data, 0644); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).
		Render(fmt.Sprintf("\n✓ Configuration saved to %s\nStarting analysis...", generatedConfigFile)))
	time.Sleep(1500 * time.Millisecond)
	return nil
}

func validatePairs(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("at least one pair is required")
	}
	for _, p := range splitPairs(s) {
		if _, err := domain.ParsePair(p); err != nil {
			return fmt.Errorf("invalid pair %q: must be BASE_QUOTE (e.g. BTC_USDT)", p)
		}
	}
	return nil
}

func splitPairs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func telegramState(token string) string {
	if token == "" {
		return "disabled"
	}
	return "enabled"
}
