// Package signals persists analysis results in a write-ahead log, one
// record per completed analysis.
package signals

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"

	"srsignal/internal/domain"
)

const (
	// DefaultDir is used when no directory is configured.
	DefaultDir = "./wal/signals"

	segmentLimit = 1000
	maxSegments  = 10

	signalKeyPrefix = "signal_"
)

// WALStore is a WAL-backed history of analysis results.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.RWMutex
}

// NewWALStore initializes the store in the given directory.
func NewWALStore(dir string) (*WALStore, error) {
	if dir == "" {
		dir = DefaultDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "seg_",
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init signal WAL")
	}

	return &WALStore{wal: wal}, nil
}

// Save appends one analysis result. A missing ID is assigned here so the
// pure analysis pipeline stays deterministic.
func (s *WALStore) Save(result *domain.AnalysisResult) error {
	if s == nil || s.wal == nil {
		return errors.New("signal store is not initialized")
	}
	if result == nil {
		return errors.New("nil analysis result")
	}
	if result.Symbol == "" {
		return errors.New("analysis result symbol is required")
	}

	if result.ID == "" {
		result.ID = uuid.NewString()
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshal analysis result")
	}

	key := fmt.Sprintf("%s%s", signalKeyPrefix, result.Symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Write(s.wal.CurrentIndex()+1, key, payload)
}

// History returns up to limit stored results for the symbol, newest first.
// An empty symbol matches every record.
func (s *WALStore) History(symbol string, limit int) ([]domain.AnalysisResult, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("signal store is not initialized")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.AnalysisResult
	for idx := s.wal.CurrentIndex(); idx >= 1; idx-- {
		if limit > 0 && len(out) >= limit {
			break
		}

		key, payload, err := s.wal.Get(idx)
		if err != nil {
			continue
		}
		if !strings.HasPrefix(key, signalKeyPrefix) {
			continue
		}
		if symbol != "" && key != signalKeyPrefix+symbol {
			continue
		}

		var result domain.AnalysisResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, errors.Wrap(err, "decode analysis result")
		}
		out = append(out, result)
	}

	return out, nil
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("signal store is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
