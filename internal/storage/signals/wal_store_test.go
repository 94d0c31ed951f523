package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srsignal/internal/domain"
)

func newTestStore(t *testing.T) *WALStore {
	t.Helper()
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(symbol string, signal domain.Signal) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Symbol:     symbol,
		Timeframe:  "1h",
		Signal:     signal,
		Confidence: 72,
		Price:      50000,
		Timestamp:  time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAssignsID(t *testing.T) {
	store := newTestStore(t)

	result := sampleResult("BTCUSDT", domain.SignalBuy)
	require.NoError(t, store.Save(result))

	assert.NotEmpty(t, result.ID)
}

func TestSaveAndHistory(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(sampleResult("BTCUSDT", domain.SignalBuy)))
	require.NoError(t, store.Save(sampleResult("ETHUSDT", domain.SignalSell)))
	require.NoError(t, store.Save(sampleResult("BTCUSDT", domain.SignalHold)))

	btc, err := store.History("BTCUSDT", 0)
	require.NoError(t, err)
	require.Len(t, btc, 2)
	// newest first
	assert.Equal(t, domain.SignalHold, btc[0].Signal)
	assert.Equal(t, domain.SignalBuy, btc[1].Signal)

	all, err := store.History("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHistoryLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(sampleResult("BTCUSDT", domain.SignalHold)))
	}

	got, err := store.History("BTCUSDT", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	store := newTestStore(t)

	require.Error(t, store.Save(nil))
	require.Error(t, store.Save(&domain.AnalysisResult{}))
}
