package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/clearprose/internal/cache"
	"github.com/dgallion1/clearprose/internal/config"
	"github.com/dgallion1/clearprose/internal/idgen"
	"github.com/dgallion1/clearprose/internal/logging"
	"github.com/dgallion1/clearprose/internal/pipeline"
	"github.com/dgallion1/clearprose/internal/readability"
	"github.com/dgallion1/clearprose/internal/telemetry"
)

func testServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	cfg := config.Config{
		APIKey:         apiKey,
		DefaultTarget:  readability.Normal,
		IDScheme:       "sequence",
		WorkerCount:    1,
		MaxQueueSize:   8,
		MaxUploadBytes: 1 << 20,
		MaxTextBytes:   1 << 10,
		JobTTL:         time.Hour,
		LatencyWindow:  time.Hour,
	}
	metrics := telemetry.NewMetrics()
	latency := telemetry.NewLatency(cfg.LatencyWindow)
	runner := pipeline.NewRunner(pipeline.RunnerOptions{
		Cache:    cache.NewMemory(16, time.Hour),
		CacheTTL: time.Hour,
		IDs:      idgen.Sequence("n"),
		Metrics:  metrics,
		Latency:  latency,
		Log:      logging.Discard(),
	})
	orch := pipeline.NewOrchestrator(cfg, runner, metrics, logging.Discard())
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)
	return NewServer(orch, metrics, latency, logging.Discard(), cfg)
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := testServer(t, "secret")
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuth(t *testing.T) {
	s := testServer(t, "secret")
	body := `{"text":"Hello there."}`

	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing authorization", decode(t, rec)["error"])

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = do(t, s, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret")
	rec = do(t, s, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyze(t *testing.T) {
	s := testServer(t, "")
	body := `{"text":"The ball was thrown by him. I think we should expedite the process.","settings":{"readingLevelTarget":"technical"}}`
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Document)
	assert.False(t, res.Cached)
	assert.Equal(t, 2, res.Document.Stats.Sentences)
	assert.Equal(t, 1, res.Document.Stats.Highlights.PassiveVoices)
	assert.Equal(t, 1, res.Document.Stats.Highlights.Qualifiers)

	rec = do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["cached"])
}

func TestAnalyzeErrors(t *testing.T) {
	s := testServer(t, "")

	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big, _ := json.Marshal(map[string]string{"text": strings.Repeat("a", 2048)})
	rec = do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(big)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func multipartBody(t *testing.T, field string, files map[string]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func waitResult(t *testing.T, s *Server, id string) *httptest.ResponseRecorder {
	t.Helper()
	var rec *httptest.ResponseRecorder
	require.Eventually(t, func() bool {
		rec = do(t, s, httptest.NewRequest(http.MethodGet, "/api/jobs/"+id+"/result", nil))
		return rec.Code != http.StatusAccepted
	}, 5*time.Second, 10*time.Millisecond)
	return rec
}

func TestUploadAndPoll(t *testing.T) {
	s := testServer(t, "")
	body, ct := multipartBody(t, "file",
		map[string]string{"../../essay.md": "# Essay\n\nThe ball was thrown by him.\n"},
		map[string]string{"target": "accessible"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := do(t, s, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	accepted := decode(t, rec)
	id, _ := accepted["job_id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "essay.md", accepted["filename"])
	assert.Equal(t, "/api/jobs/"+id, accepted["poll_url"])

	rec = waitResult(t, s, id)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Essay", res.Title)
	assert.Equal(t, 1, res.Document.Stats.Highlights.PassiveVoices)

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/api/jobs/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode(t, rec)
	assert.Equal(t, "completed", status["status"])
	assert.Equal(t, map[string]any{"readingLevelTarget": "ACCESSIBLE"}, status["settings"])
}

func TestUploadRejectsUnsupported(t *testing.T) {
	s := testServer(t, "")
	body, ct := multipartBody(t, "file", map[string]string{"data.csv": "a,b"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "unsupported file type")
}

func TestBatchUpload(t *testing.T) {
	s := testServer(t, "")
	body, ct := multipartBody(t, "files", map[string]string{
		"a.txt":  "Short one.",
		"b.html": "<html><body><p>I think so.</p></body></html>",
		"c.exe":  "MZ",
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/batch", body)
	req.Header.Set("Content-Type", ct)
	rec := do(t, s, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	jobs, _ := decode(t, rec)["jobs"].([]any)
	require.Len(t, jobs, 3)
	var ids []string
	var rejected int
	for _, j := range jobs {
		m := j.(map[string]any)
		if _, bad := m["error"]; bad {
			rejected++
			continue
		}
		ids = append(ids, m["job_id"].(string))
	}
	assert.Equal(t, 1, rejected)
	for _, id := range ids {
		assert.Equal(t, http.StatusOK, waitResult(t, s, id).Code)
	}
}

func TestJobNotFound(t *testing.T) {
	s := testServer(t, "")
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/api/jobs/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/api/jobs/nope/result", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFailedJobResult(t *testing.T) {
	s := testServer(t, "")
	body, ct := multipartBody(t, "file", map[string]string{"blank.txt": "\n\n"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := do(t, s, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = waitResult(t, s, decode(t, rec)["job_id"].(string))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []any{"no extractable prose"}, decode(t, rec)["errors"])
}

func TestLatencyAndMetrics(t *testing.T) {
	s := testServer(t, "")
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"Hi there."}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/api/stats/latency", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)["stats"].(map[string]any)
	assert.Equal(t, 1.0, stats["count"])

	rec = do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clearprose_analyses_total{readability="normal",source="text"} 1`)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"../../etc/passwd": "passwd",
		"a..b.txt":         "a_b.txt",
		"":                 "unnamed",
		`C:\docs\x.md`:     `C:_docs_x.md`,
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}
