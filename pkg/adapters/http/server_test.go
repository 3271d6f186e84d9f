package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nicocarlier/safe-env-lite/pkg/adapters/memory"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = schema.Schema{
	schema.Var("PORT", schema.Number),
	schema.Var("TOKEN", schema.Descriptor{Type: schema.Number, Secret: true}),
	schema.Var("MODE", schema.Enum{"a", "b"}),
}

func newResult(t *testing.T, values map[string]string) Result {
	t.Helper()
	env, err := schema.Validate(testSchema, memory.NewSource(values))
	return Result{Schema: testSchema, Env: env, Err: err, CheckedAt: time.Unix(0, 0).UTC()}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_Valid(t *testing.T) {
	h := NewHandler(newResult(t, map[string]string{"PORT": "80", "TOKEN": "42", "MODE": "a"}))

	w := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = get(t, h, "/env")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"PORT":80,"TOKEN":"***","MODE":"a"}`, w.Body.String())

	w = get(t, h, "/problems")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_Invalid(t *testing.T) {
	h := NewHandler(newResult(t, map[string]string{"PORT": "x", "TOKEN": "hunter2", "MODE": "a"}))

	w := get(t, h, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"invalid","problems":2}`, w.Body.String())

	w = get(t, h, "/env")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = get(t, h, "/problems")
	require.Equal(t, http.StatusOK, w.Code)
	var problems []schema.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problems))
	require.Len(t, problems, 2)
	require.NotNil(t, problems[0].Value)
	assert.Equal(t, "x", *problems[0].Value)
	assert.Nil(t, problems[1].Value)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestHandler_InfoAndSchema(t *testing.T) {
	h := NewHandler(newResult(t, nil))

	w := get(t, h, "/info")
	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "safeenv-http", info["app"])
	assert.Equal(t, []any{"PORT", "TOKEN", "MODE"}, info["variables"])

	w = get(t, h, "/schema")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "| `PORT` | number | yes |")
}

func TestHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	h := NewHandler(newResult(t, nil), WithGatherer(reg))
	w := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_total 1")

	w = get(t, NewHandler(newResult(t, nil)), "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ProblemsByCode(t *testing.T) {
	h := NewHandler(newResult(t, map[string]string{"PORT": "x", "TOKEN": "bad"}))

	tests := []struct {
		query string
		keys  []string
	}{
		{"/problems", []string{"PORT", "TOKEN", "MODE"}},
		{"/problems?code=invalid_number", []string{"PORT", "TOKEN"}},
		{"/problems?code=missing_enum", []string{"MODE"}},
		{"/problems?code=required", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := get(t, h, tt.query)
			require.Equal(t, http.StatusOK, w.Code)
			var problems []Problem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problems))
			keys := make([]string, 0, len(problems))
			for _, p := range problems {
				keys = append(keys, p.Key)
			}
			assert.Equal(t, tt.keys, keys)
		})
	}
}

func TestHandler_OpenAPI(t *testing.T) {
	w := get(t, NewHandler(newResult(t, nil)), "/openapi.yaml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/yaml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"openapi":"3.0.3"`)

	swagger, err := GetSwagger()
	require.NoError(t, err)
	assert.Equal(t, "safeenv inspection API", swagger.Info.Title)
	for _, path := range []string{"/health", "/info", "/env", "/problems", "/schema"} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}
