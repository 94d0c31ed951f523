// Package analysis orchestrates the pipeline around the pure analyzer:
// fetching candles, scoring, persisting and ordering batch results.
package analysis

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"srsignal/internal/analyzer"
	"srsignal/internal/domain"
	"srsignal/internal/services/marketdata"
	"srsignal/pkg/retrier"
)

// fetchTimeout bounds a single exchange call, retries included per attempt.
const fetchTimeout = 30 * time.Second

// Store persists completed analyses. Persistence failures are logged, never
// fatal to an analysis.
type Store interface {
	Save(result *domain.AnalysisResult) error
}

// Service runs analyses for configured instruments. All collaborators are
// constructed by the caller and passed in; the service holds no globals.
type Service struct {
	logger   *zap.Logger
	provider marketdata.KlineProvider
	store    Store
	retry    *retrier.Retrier
	cfg      analyzer.Config
}

// NewService creates the orchestration service. store may be nil when
// persistence is disabled.
func NewService(logger *zap.Logger, provider marketdata.KlineProvider, store Store, cfg analyzer.Config) *Service {
	return &Service{
		logger:   logger,
		provider: provider,
		store:    store,
		retry:    retrier.New(3, time.Second, 10*time.Second),
		cfg:      cfg,
	}
}

// AnalyzeSymbol fetches candles for one instrument and runs the pipeline.
func (s *Service) AnalyzeSymbol(ctx context.Context, pair domain.Pair, timeframe string, limit int) (*domain.AnalysisResult, error) {
	s.logger.Info("analyzing",
		zap.String("symbol", pair.Symbol()),
		zap.String("timeframe", timeframe))

	candles, err := retrier.DoWithData(s.retry, ctx, func(ctx context.Context) ([]domain.Candle, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		return s.provider.GetKlines(fetchCtx, pair, timeframe, limit)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch candles for %s", pair.Symbol())
	}

	result, err := analyzer.Analyze(pair.Symbol(), timeframe, candles, s.cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "analysis failed for %s", pair.Symbol())
	}

	if s.store != nil {
		if err := s.store.Save(result); err != nil {
			s.logger.Error("failed to persist analysis",
				zap.String("symbol", pair.Symbol()),
				zap.Error(err))
		}
	}

	s.logger.Info("analysis complete",
		zap.String("symbol", pair.Symbol()),
		zap.String("signal", result.Signal.String()),
		zap.Int("confidence", result.Confidence))

	return result, nil
}

// AnalyzeBatch analyzes every pair. A failure for one instrument becomes an
// ERROR-classed placeholder instead of aborting the batch. Results come back
// sorted by signal rank, then confidence descending.
func (s *Service) AnalyzeBatch(ctx context.Context, pairs []domain.Pair, timeframe string, limit int) []*domain.AnalysisResult {
	results := make([]*domain.AnalysisResult, 0, len(pairs))

	for _, pair := range pairs {
		result, err := s.AnalyzeSymbol(ctx, pair, timeframe, limit)
		if err != nil {
			s.logger.Error("analysis failed",
				zap.String("symbol", pair.Symbol()),
				zap.Error(err))
			results = append(results, &domain.AnalysisResult{
				Symbol:    pair.Symbol(),
				Timeframe: timeframe,
				Signal:    domain.SignalError,
				Err:       err.Error(),
				Timestamp: time.Now().UTC(),
			})
			continue
		}
		results = append(results, result)
	}

	sortResults(results)

	return results
}

// sortResults orders batch output by signal rank, then confidence descending.
func sortResults(results []*domain.AnalysisResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Signal.Rank() != results[j].Signal.Rank() {
			return results[i].Signal.Rank() < results[j].Signal.Rank()
		}
		return results[i].Confidence > results[j].Confidence
	})
}
