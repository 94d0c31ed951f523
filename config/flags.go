package config

import (
	"flag"
	"strings"
)

// Get resolves configuration. A --config flag selects a yaml file; otherwise
// the remaining flags are used directly.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	platform := flag.String("platform", defaultPlatform, "exchange platform: binance or bybit")
	pairsFlag := flag.String("pairs", "BTC_USDT", "comma-separated pairs, example: BTC_USDT,ETH_USDT")
	timeframe := flag.String("timeframe", defaultTimeframe, "candle timeframe, example: 1h")
	limit := flag.Int("limit", defaultCandleLimit, "number of candles to fetch per pair")
	walDir := flag.String("waldir", "", "directory for the signal history WAL")
	pollInterval := flag.Duration("pollinterval", 0, "re-run interval, 0 means analyze once and exit")
	tgToken := flag.String("tgtoken", "", "telegram bot token (optional)")
	tgChat := flag.String("tgchat", "", "telegram chat id (optional)")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}

	tmp := ConfigTmp{
		Platform:      *platform,
		Pairs:         strings.Split(*pairsFlag, ","),
		Timeframe:     *timeframe,
		CandleLimit:   *limit,
		WALDir:        *walDir,
		PollInterval:  *pollInterval,
		TelegramToken: *tgToken,
		TelegramChat:  *tgChat,
	}

	return tmp.resolve()
}
