package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/castkit/scenevault/pkg/adapters/httpapi"
	"github.com/castkit/scenevault/pkg/adapters/memory"
	"github.com/castkit/scenevault/pkg/persistence"
	"github.com/castkit/scenevault/pkg/persistence/middleware"
	"github.com/castkit/scenevault/pkg/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...httpapi.Option) http.Handler {
	t.Helper()

	app := state.NewApp()
	m := persistence.NewManager(memory.NewStore(), persistence.Services{
		Scenes:     app.Scenes,
		Sources:    app.Sources,
		Transition: app.Transition,
		Hotkeys:    app.Hotkeys,
	})
	require.NoError(t, m.Init(context.Background()))
	return httpapi.NewHandler(m, opts...)
}

func do(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestListCollections_EmptyStore(t *testing.T) {
	handler := newTestHandler(t)

	w := do(handler, "GET", "/collections", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Collections []string `json:"collections"`
		Active      string   `json:"active"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Collections)
	assert.Empty(t, resp.Active)
}

func TestCreateCollection(t *testing.T) {
	handler := newTestHandler(t)

	w := do(handler, "POST", "/collections", `{"name": "Work"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(handler, "GET", "/collections", "")
	assert.Contains(t, w.Body.String(), `"Work"`)
}

func TestCreateCollection_IllegalName(t *testing.T) {
	handler := newTestHandler(t)

	w := do(handler, "POST", "/collections", `{"name": "bad/name"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(handler, "POST", "/collections", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivateCollection_BootstrapsAndReportsActive(t *testing.T) {
	handler := newTestHandler(t)

	require.Equal(t, http.StatusCreated, do(handler, "POST", "/collections", `{"name": "Work"}`).Code)

	w := do(handler, "POST", "/collections/Work/activate", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Active string `json:"active"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Work", resp.Active)
}

func TestDuplicateCollection(t *testing.T) {
	handler := newTestHandler(t)

	do(handler, "POST", "/collections", `{"name": "Work"}`)
	do(handler, "POST", "/collections/Work/activate", "")

	w := do(handler, "POST", "/collections/Work/duplicate", `{"to": "Work2"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(handler, "GET", "/collections", "")
	assert.Contains(t, w.Body.String(), `"Work2"`)
}

func TestDuplicateCollection_IllegalTarget(t *testing.T) {
	handler := newTestHandler(t)

	do(handler, "POST", "/collections", `{"name": "Work"}`)
	do(handler, "POST", "/collections/Work/activate", "")

	w := do(handler, "POST", "/collections/Work/duplicate", `{"to": "bad.name"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRenameCollection(t *testing.T) {
	handler := newTestHandler(t)

	do(handler, "POST", "/collections", `{"name": "Work"}`)
	do(handler, "POST", "/collections/Work/activate", "")

	w := do(handler, "POST", "/collections/Work/rename", `{"to": "Job"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(handler, "GET", "/collections", "")
	assert.Contains(t, w.Body.String(), `"Job"`)
	assert.NotContains(t, w.Body.String(), `"Work"`)
}

func TestRenameCollection_UnknownName(t *testing.T) {
	handler := newTestHandler(t)

	w := do(handler, "POST", "/collections/Ghost/rename", `{"to": "Job"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveCollection(t *testing.T) {
	handler := newTestHandler(t)

	do(handler, "POST", "/collections", `{"name": "Work"}`)

	w := do(handler, "DELETE", "/collections/Work", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(handler, "DELETE", "/collections/Work", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSave(t *testing.T) {
	handler := newTestHandler(t)

	do(handler, "POST", "/collections", `{"name": "Work"}`)
	do(handler, "POST", "/collections/Work/activate", "")

	w := do(handler, "POST", "/save", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSuggestName(t *testing.T) {
	handler := newTestHandler(t)

	do(handler, "POST", "/collections", `{"name": "Work"}`)

	w := do(handler, "GET", "/suggest?base=Work", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Work (2)")
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := state.NewApp()
	store := middleware.Chain(memory.NewStore(), middleware.NewMetricsMiddleware(reg))
	m := persistence.NewManager(store, persistence.Services{
		Scenes:     app.Scenes,
		Sources:    app.Sources,
		Transition: app.Transition,
		Hotkeys:    app.Hotkeys,
	})
	require.NoError(t, m.Init(context.Background()))
	handler := httpapi.NewHandler(m, httpapi.WithMetrics(reg))

	do(handler, "POST", "/collections", `{"name": "Work"}`)

	w := do(handler, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scenevault_store_operations_total")
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/collections", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
