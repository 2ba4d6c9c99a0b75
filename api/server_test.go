package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfour-labs/connect4-server/game/service"
	"github.com/cfour-labs/connect4-server/game/session"
	"github.com/cfour-labs/connect4-server/solver"
	"github.com/cfour-labs/connect4-server/transport/websocket"
)

func newTestServer(t *testing.T, script string) (*Server, service.GameService) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "c4solver")
	if script == "" {
		script = "#!/bin/sh\nread pos\necho \"$pos 5 4 3 -1000 3 4 5\"\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	svc := service.NewGameService(session.NewStore())
	sv := solver.New(path)
	hub := websocket.NewHub(svc, sv)
	go hub.Run()

	return NewServer(svc, sv, hub, t.TempDir()), svc
}

func doRequest(t *testing.T, srv *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestAnalyse(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := doRequest(t, srv, "GET", "/analyse/44")
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis solver.Analysis
	decodeBody(t, rec, &analysis)

	assert.Equal(t, "44", analysis.Position)
	require.Len(t, analysis.Analysis.Columns, 7)

	col1 := analysis.Analysis.Columns["1"]
	require.NotNil(t, col1.Score)
	assert.Equal(t, 5, *col1.Score)
	assert.True(t, col1.Valid)

	col4 := analysis.Analysis.Columns["4"]
	assert.False(t, col4.Valid)
}

func TestAnalyseStartPosition(t *testing.T) {
	srv, _ := newTestServer(t, "#!/bin/sh\nread pos\necho \"start 0 0 0 1 0 0 0\"\n")

	rec := doRequest(t, srv, "GET", "/analyse")
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis solver.Analysis
	decodeBody(t, rec, &analysis)

	assert.Empty(t, analysis.Position)
	assert.Len(t, analysis.Analysis.Columns, 7)
}

func TestAnalyseInvalidPosition(t *testing.T) {
	srv, _ := newTestServer(t, "")

	for _, position := range []string{"48", "4a", "40"} {
		rec := doRequest(t, srv, "GET", "/analyse/"+position)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "Position must only contain digits 1-7", body["error"])
	}
}

func TestAnalyseSolverFailure(t *testing.T) {
	srv, _ := newTestServer(t, "#!/bin/sh\nexit 3\n")

	rec := doRequest(t, srv, "GET", "/analyse/4")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGamesEmpty(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := doRequest(t, srv, "GET", "/api/games")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Games []*service.GameView `json:"games"`
		Count int                 `json:"count"`
	}
	decodeBody(t, rec, &body)
	assert.Zero(t, body.Count)
	assert.Empty(t, body.Games)
}

func TestListAndGetGame(t *testing.T) {
	srv, svc := newTestServer(t, "")

	ctx := context.Background()
	_, err := svc.Register(ctx, "alice", false)
	require.NoError(t, err)
	res, err := svc.Register(ctx, "bob", false)
	require.NoError(t, err)
	require.True(t, res.Paired)

	rec := doRequest(t, srv, "GET", "/api/games")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Games []*service.GameView `json:"games"`
		Count int                 `json:"count"`
	}
	decodeBody(t, rec, &body)
	require.Equal(t, 1, body.Count)

	rec = doRequest(t, srv, "GET", "/api/games/"+string(body.Games[0].ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var view service.GameView
	decodeBody(t, rec, &view)
	assert.Equal(t, "alice", view.Player1Name)
	assert.Equal(t, "bob", view.Player2Name)
}

func TestGetGameNotFound(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := doRequest(t, srv, "GET", "/api/games/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec := doRequest(t, srv, "GET", "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}
