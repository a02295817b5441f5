package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/fintrace-client/internal/adapter"
	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/internal/store"
	"github.com/MKhiriev/fintrace-client/internal/utils"
	"github.com/MKhiriev/fintrace-client/internal/workers"
	"github.com/MKhiriev/fintrace-client/models"
)

type analysisService struct {
	adapter adapter.AnalyzerAdapter
	history store.HistoryRepository
	pool    *workers.Pool
	ids     *utils.UUIDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewAnalysisService constructs an [AnalysisService]. history may be nil, in
// which case nothing is recorded.
func NewAnalysisService(analyzer adapter.AnalyzerAdapter, history store.HistoryRepository, pool *workers.Pool, logger *logger.Logger) AnalysisService {
	return &analysisService{
		adapter: analyzer,
		history: history,
		pool:    pool,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}
}

// Analyze implements [AnalysisService].
func (s *analysisService) Analyze(ctx context.Context, file models.AnalysisFile) (models.AnalysisResponse, error) {
	started := s.now()

	fp := utils.NewFingerprint(file.Content)
	file.Content = fp

	resp, err := s.adapter.Analyze(ctx, file)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", file.Name).Msg("analysis failed")
	} else {
		s.logger.Info().Str("file", file.Name).Int64("bytes", fp.Size()).Msg("analysis completed")
	}

	s.record(ctx, file.Name, fp, started, resp, err)
	return resp, err
}

// AnalyzeFile implements [AnalysisService].
func (s *analysisService) AnalyzeFile(ctx context.Context, path string) (models.AnalysisResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file to analyze: %w", err)
	}
	defer f.Close()

	return s.Analyze(ctx, models.AnalysisFile{
		Name:    filepath.Base(path),
		Content: f,
	})
}

// AnalyzeFiles implements [AnalysisService].
func (s *analysisService) AnalyzeFiles(ctx context.Context, paths []string) []models.AnalysisResult {
	results := make([]models.AnalysisResult, len(paths))
	started := make([]bool, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	err := s.pool.Run(ctx, len(paths), func(ctx context.Context, i int) {
		started[i] = true
		results[i].Response, results[i].Err = s.AnalyzeFile(ctx, paths[i])
	})
	if err != nil {
		for i := range results {
			if !started[i] {
				results[i].Err = err
			}
		}
	}

	return results
}

// Summarize implements [AnalysisService].
func (s *analysisService) Summarize(ctx context.Context, report models.AnalysisReport) (models.SummarizeResponse, error) {
	return s.adapter.Summarize(ctx, models.NewSummarizeRequest(report))
}

// Chat implements [AnalysisService].
func (s *analysisService) Chat(ctx context.Context, messages []models.ChatMessage, report models.AnalysisReport) (models.ChatResponse, error) {
	return s.adapter.Chat(ctx, models.ChatRequest{
		Messages: messages,
		Context:  models.NewChatContext(report),
	})
}

// History implements [AnalysisService].
func (s *analysisService) History(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}

// Record implements [AnalysisService].
func (s *analysisService) Record(ctx context.Context, id string) (models.AnalysisRecord, error) {
	if s.history == nil {
		return models.AnalysisRecord{}, ErrHistoryDisabled
	}
	return s.history.Get(ctx, id)
}

func (s *analysisService) record(ctx context.Context, name string, fp *utils.Fingerprint, started time.Time, resp models.AnalysisResponse, callErr error) {
	if s.history == nil {
		return
	}

	rec := models.AnalysisRecord{
		ID:          s.ids.Generate(),
		FileName:    name,
		FileSize:    fp.Size(),
		Fingerprint: fp.Sum(),
		BaseURL:     s.adapter.BaseURL(),
		Success:     callErr == nil,
		Response:    resp,
		Duration:    s.now().Sub(started),
		CreatedAt:   started,
	}
	if callErr != nil {
		rec.Error = callErr.Error()
		var statusErr *adapter.StatusError
		if errors.As(callErr, &statusErr) {
			rec.StatusCode = statusErr.StatusCode
		}
	}

	// the record outlives a cancelled upload
	if err := s.history.Save(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Err(err).Str("file", name).Msg("failed to record analysis")
	}
}
