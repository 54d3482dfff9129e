package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quynguyn1525/Translate-Bot/internal/artifact"
)

func newTestRouter(t *testing.T) (chi.Router, *artifact.Store) {
	t.Helper()
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)
	sweeper := artifact.NewSweeper(store, time.Hour, time.Hour)

	h := NewStatusHandler(store, sweeper, logger.NewZapLogger(zap.NewNop().Sugar()))
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r, store
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestStatusReportsArtifacts(t *testing.T) {
	r, store := newTestRouter(t)
	_, err := store.Put("req-1", artifact.KindRaw, []byte("OggS"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 1, body.Artifacts.Count)
	assert.EqualValues(t, 4, body.Artifacts.Bytes)
	assert.Greater(t, body.Goroutines, 0)
	assert.Empty(t, body.Sweeper.LastRun, "sweep has not run yet")
	assert.Zero(t, body.Sweeper.TotalRemoved)
}
