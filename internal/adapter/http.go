package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fintrace-client/internal/config"
	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/internal/utils"
	"github.com/MKhiriev/fintrace-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	analyzePath   = "/analyze"
	summarizePath = "/summarize"
	chatPath      = "/chat"

	// fileField is the multipart field the backend reads the upload from.
	fileField = "file"

	traceIDHeader = "X-Trace-ID"
)

var errInvalidJSON = errors.New("body is not valid JSON")

type httpAnalyzerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPAnalyzerAdapter constructs an HTTP implementation of
// [AnalyzerAdapter]. It normalises and validates cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAnalyzerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AnalyzerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpAnalyzerAdapter{
		client:  client,
		baseURL: baseURL,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [AnalyzerAdapter].
func (h *httpAnalyzerAdapter) BaseURL() string {
	return h.baseURL
}

// Analyze implements [AnalyzerAdapter]. It streams file.Content as the only
// part of a multipart/form-data body under the "file" field and POSTs it to
// POST /analyze. A 2xx body is returned byte for byte once it is confirmed to
// be JSON.
func (h *httpAnalyzerAdapter) Analyze(ctx context.Context, file models.AnalysisFile) (models.AnalysisResponse, error) {
	req, log := h.newRequest(ctx, analyzePath)
	if file.ContentType != "" {
		req.SetMultipartField(fileField, file.Name, file.ContentType, file.Content)
	} else {
		req.SetFileReader(fileField, file.Name, file.Content)
	}

	resp, err := req.Post(analyzePath)
	if err != nil {
		log.Err(err).Str("file", file.Name).Msg("analyze request failed")
		return nil, mapTransportError("analyze", err)
	}
	log.Debug().
		Str("file", file.Name).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("analyze response received")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, mapDecodeError("analyze", errInvalidJSON)
	}

	return models.AnalysisResponse(body), nil
}

// Summarize implements [AnalyzerAdapter]. It POSTs req as JSON to
// POST /summarize and decodes {"summary": "..."}.
func (h *httpAnalyzerAdapter) Summarize(ctx context.Context, req models.SummarizeRequest) (models.SummarizeResponse, error) {
	var out models.SummarizeResponse
	if err := h.postJSON(ctx, summarizePath, "summarize", req, &out); err != nil {
		return models.SummarizeResponse{}, err
	}
	return out, nil
}

// Chat implements [AnalyzerAdapter]. It POSTs req as JSON to POST /chat and
// decodes {"content": "..."}.
func (h *httpAnalyzerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var out models.ChatResponse
	if err := h.postJSON(ctx, chatPath, "chat", req, &out); err != nil {
		return models.ChatResponse{}, err
	}
	return out, nil
}

func (h *httpAnalyzerAdapter) postJSON(ctx context.Context, path, op string, body, out any) error {
	req, log := h.newRequest(ctx, path)

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		log.Err(err).Msgf("%s request failed", op)
		return mapTransportError(op, err)
	}
	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msgf("%s response received", op)

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return mapDecodeError(op, err)
	}
	return nil
}

// newRequest tags the call with a fresh trace id, sent as X-Trace-ID and
// attached to the returned logger.
func (h *httpAnalyzerAdapter) newRequest(ctx context.Context, path string) (*resty.Request, *logger.Logger) {
	traceID := h.ids.Generate()
	ctx, log := h.logger.WithTraceID(ctx, traceID)
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("path", path)
	})

	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID), log
}
