package httpapi

import (
	"ChallengeWizard/internal/adapters/repository/memory"
	"ChallengeWizard/internal/domain/service/access"
	"ChallengeWizard/internal/domain/service/admin"
	"ChallengeWizard/internal/domain/service/form"
	"ChallengeWizard/internal/domain/service/game"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminID = "77"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := memory.NewChallengeRepo()
	states := memory.NewWizardStateRepo(time.Hour)
	srv := New(
		access.New(map[int64]struct{}{77: {}}),
		form.New(repo, states),
		admin.New(repo),
		game.New(repo),
		zap.NewNop(),
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set(AdminHeader, adminID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/challenges")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/challenges", nil)
	req.Header.Set(AdminHeader, "12")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/catalog")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t)
	code, body := do(t, ts, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, code)

	assert.Len(t, body["steps"], 6)
	themes := body["themes"].(map[string]any)
	assert.Len(t, themes["Activity"], 5)
	assert.Len(t, body["badges"], 6)
}

func TestWizardFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	code, body := do(t, ts, http.MethodPost, "/api/wizard", "")
	require.Equal(t, http.StatusCreated, code)
	id := body["challenge"].(map[string]any)["id"].(string)
	assert.Equal(t, "id="+id+"&step=0&substep=0", body["location"])

	code, body = do(t, ts, http.MethodPost, "/api/wizard/next", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "category", body["field"])

	code, _ = do(t, ts, http.MethodPatch, "/api/wizard/answers/basicInformation",
		`{"category":"Nutrition","theme":"Bingo","importance":"high"}`)
	require.Equal(t, http.StatusOK, code)

	for i := 0; i < 3; i++ {
		code, body = do(t, ts, http.MethodPost, "/api/wizard/next", "")
		require.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, "squaresRequired", body["question"].(map[string]any)["name"])
	assert.Equal(t, "id="+id+"&step=1&substep=0", body["location"])

	code, body = do(t, ts, http.MethodPatch, "/api/wizard/answers/objective", `{"bingo":{"squaresRequired":0}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["canAdvance"])

	code, body = do(t, ts, http.MethodPatch, "/api/wizard/answers/objective", `{"bingo":{"squaresRequired":9}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["canAdvance"])

	code, body = do(t, ts, http.MethodGet, "/api/wizard?id="+id+"&step=0&substep=2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "importance", body["question"].(map[string]any)["name"])

	code, body = do(t, ts, http.MethodPost, "/api/wizard/back", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "theme", body["question"].(map[string]any)["name"])

	code, body = do(t, ts, http.MethodGet, "/api/wizard", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "id="+id+"&step=0&substep=1", body["location"])

	code, _ = do(t, ts, http.MethodPatch, "/api/wizard/answers/timeline", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do(t, ts, http.MethodGet, "/api/wizard?id="+id+"&step=two", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestDeleteThenPreviewShowsNotFound(t *testing.T) {
	ts := newTestServer(t)

	code, body := do(t, ts, http.MethodPost, "/api/wizard", "")
	require.Equal(t, http.StatusCreated, code)
	id := body["challenge"].(map[string]any)["id"].(string)

	code, body = do(t, ts, http.MethodGet, "/api/challenges/"+id+"/preview", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Untitled Challenge", body["title"])

	code, body = do(t, ts, http.MethodGet, "/api/challenges?status=draft", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])

	code, _ = do(t, ts, http.MethodDelete, "/api/challenges/"+id, "")
	require.Equal(t, http.StatusNoContent, code)

	code, body = do(t, ts, http.MethodGet, "/api/challenges", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["total"])

	code, body = do(t, ts, http.MethodGet, "/api/challenges/"+id+"/preview", "")
	require.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, map[string]any{"label": "Return to Dashboard", "href": "/"}, body["action"])

	code, _ = do(t, ts, http.MethodGet, "/api/wizard", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStatusEndpoint(t *testing.T) {
	ts := newTestServer(t)

	code, body := do(t, ts, http.MethodPost, "/api/wizard", "")
	require.Equal(t, http.StatusCreated, code)
	id := body["challenge"].(map[string]any)["id"].(string)

	code, _ = do(t, ts, http.MethodPost, "/api/challenges/"+id+"/status", `{"status":"listed"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body = do(t, ts, http.MethodPost, "/api/challenges/"+id+"/status", `{"status":"submitted"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.NotEmpty(t, body["field"])

	code, _ = do(t, ts, http.MethodPost, "/api/challenges/"+id+"/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do(t, ts, http.MethodGet, "/api/challenges?status=archived", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestShowcaseHidesDrafts(t *testing.T) {
	ts := newTestServer(t)

	code, body := do(t, ts, http.MethodPost, "/api/wizard", "")
	require.Equal(t, http.StatusCreated, code)
	id := body["challenge"].(map[string]any)["id"].(string)

	resp, err := http.Get(ts.URL + "/api/showcase")
	require.NoError(t, err)
	var list map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Equal(t, float64(0), list["total"])

	resp, err = http.Get(ts.URL + "/api/showcase/" + id)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
