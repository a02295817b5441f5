// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/fintrace-client/internal/config"
	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpAnalyzerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpAnalyzerAdapter {
	t.Helper()
	a, err := NewHTTPAnalyzerAdapter(config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAnalyzerAdapter)
}

type uploadedPart struct {
	field    string
	filename string
	content  []byte
}

// readParts decodes the multipart body and returns every part in it.
func readParts(t *testing.T, r *http.Request) []uploadedPart {
	t.Helper()
	mr, err := r.MultipartReader()
	require.NoError(t, err)

	var parts []uploadedPart
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, uploadedPart{field: p.FormName(), filename: p.FileName(), content: data})
	}
	return parts
}

func csvFile(name, content string) models.AnalysisFile {
	return models.AnalysisFile{Name: name, Content: strings.NewReader(content)}
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "hosted", raw: "https://fintrace-ai.onrender.com", want: "https://fintrace-ai.onrender.com"},
		{name: "trailing slash", raw: "http://127.0.0.1:8000/", want: "http://127.0.0.1:8000"},
		{name: "no scheme", raw: "127.0.0.1:8000", want: "http://127.0.0.1:8000"},
		{name: "spaces", raw: "  http://localhost:8000  ", want: "http://localhost:8000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAnalyzerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPAnalyzerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter base url")
}

// ── Analyze ──────────────────────────────────────────────────────────────────

func TestAnalyze_SendsSingleFilePart(t *testing.T) {
	const content = "transaction_id,sender_id,receiver_id,amount,timestamp\nT1,A,B,100.5,2024-01-01 10:00:00\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(traceIDHeader))

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		parts := readParts(t, r)
		require.Len(t, parts, 1)
		assert.Equal(t, "file", parts[0].field)
		assert.Equal(t, "transactions.csv", parts[0].filename)
		assert.Equal(t, content, string(parts[0].content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": "ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Analyze(context.Background(), csvFile("transactions.csv", content))

	require.NoError(t, err)
	assert.JSONEq(t, `{"result": "ok"}`, string(got))
}

func TestAnalyze_ReturnsBodyUnmodified(t *testing.T) {
	const body = `{"suspicious_accounts":[],"fraud_rings":[],"summary":{"total_accounts_analyzed":3,"processing_time_seconds":0.012}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Analyze(context.Background(), csvFile("tx.csv", "x"))

	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestAnalyze_ContentTypeIsForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mr, err := r.MultipartReader()
		require.NoError(t, err)
		p, err := mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "text/csv", p.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Analyze(context.Background(), models.AnalysisFile{
		Name:        "tx.csv",
		ContentType: "text/csv",
		Content:     strings.NewReader("a,b\n"),
	})
	require.NoError(t, err)
}

func TestAnalyze_PathIndependentOfContent(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	for _, content := range []string{"", "/etc/passwd", "../../x", "\x00\x01binary"} {
		_, err := a.Analyze(context.Background(), csvFile("f.csv", content))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"/analyze", "/analyze", "/analyze", "/analyze"}, paths)
}

func TestAnalyze_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	got, err := a.Analyze(context.Background(), csvFile("tx.csv", "a,b\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Nil(t, got)
}

func TestAnalyze_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
	}{
		{
			name:       "bad request with detail",
			status:     http.StatusBadRequest,
			body:       `{"detail": "Only CSV files allowed"}`,
			wantErr:    ErrBadRequest,
			wantDetail: "Only CSV files allowed",
		},
		{
			name:       "validation error keeps structured detail",
			status:     http.StatusUnprocessableEntity,
			body:       `{"detail":[{"loc":["body","file"],"msg":"field required"}]}`,
			wantErr:    ErrUnprocessable,
			wantDetail: `[{"loc":["body","file"],"msg":"field required"}]`,
		},
		{
			name:       "plain text 500",
			status:     http.StatusInternalServerError,
			body:       "Internal Server Error\n",
			wantErr:    ErrInternalServer,
			wantDetail: "Internal Server Error",
		},
		{
			name:       "unmapped status",
			status:     http.StatusTeapot,
			body:       "",
			wantErr:    ErrRequestFailed,
			wantDetail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.Analyze(context.Background(), csvFile("tx.csv", "x"))

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrRequestFailed)
			assert.ErrorIs(t, err, tt.wantErr)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.wantDetail, statusErr.Detail)
			assert.Equal(t, tt.body, string(statusErr.Body))
		})
	}
}

func TestAnalyze_InvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Analyze(context.Background(), csvFile("tx.csv", "x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "decode analyze response")
}

func TestAnalyze_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Analyze(ctx, csvFile("tx.csv", "x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnalyze_ConcurrentCallsAreIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := readParts(t, r)
		if !assert.Len(t, parts, 1) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"filename": parts[0].filename,
			"content":  string(parts[0].content),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	const calls = 16
	var wg sync.WaitGroup
	for i := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("file-%d.csv", i)
			content := strings.Repeat(fmt.Sprintf("row-%d\n", i), 100+i)

			got, err := a.Analyze(context.Background(), csvFile(name, content))
			if !assert.NoError(t, err) {
				return
			}

			var echoed map[string]string
			if assert.NoError(t, got.Decode(&echoed)) {
				assert.Equal(t, name, echoed["filename"])
				assert.Equal(t, content, echoed["content"])
			}
		}()
	}
	wg.Wait()
}

// ── Summarize / Chat ─────────────────────────────────────────────────────────

func TestSummarize_Success(t *testing.T) {
	req := models.SummarizeRequest{TotalAccounts: 10, FraudRings: 2, SuspiciousAccounts: 3, AvgRiskScore: 61.5}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/summarize", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.SummarizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		_, _ = w.Write([]byte(`{"summary": "- two rings found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Summarize(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "- two rings found", got.Summary)
}

func TestSummarize_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail": "Groq API error: quota"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Summarize(context.Background(), models.SummarizeRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "Groq API error: quota")
}

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, bytes.Contains(body, []byte(`"role":"user"`)))
		assert.True(t, bytes.Contains(body, []byte(`"total_accounts":4`)))

		_, _ = w.Write([]byte(`{"content": "Ring R1 is a cycle."}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: models.ChatRoleUser, Content: "what is R1?"}},
		Context:  models.ChatContext{TotalAccounts: 4},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ring R1 is a cycle.", got.Content)
}

func TestChat_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Chat(context.Background(), models.ChatRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "decode chat response")
}
