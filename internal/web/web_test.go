package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	authservice "clubmanager/auth/service"
	"clubmanager/auth/session"
	"clubmanager/auth/users"
	"clubmanager/internal/config"
	"clubmanager/internal/migrate"
	"clubmanager/internal/notify"
	"clubmanager/internal/service"
	"clubmanager/internal/storage/sqlite"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server   *Server
	storage  *sqlite.Storage
	sessions *session.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, migrate.Up(db))
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	st := sqlite.New(db, l)
	sessions := session.NewRegistry()
	auth, err := authservice.New(context.Background(), config.Auth{
		AdminPassword: "pw",
		SessionCookie: "session_id",
	}, st, sessions, l)
	require.NoError(t, err)
	server, err := New(Services{
		Auth:        auth,
		Matches:     service.NewMatchService(st, notify.Noop{}, l),
		Trainings:   service.NewTrainingService(st, notify.Noop{}, l),
		Players:     service.NewPlayerService(st, "pw", l),
		Users:       service.NewUserService(st, l),
		Attendance:  service.NewAttendanceService(st, l),
		Evaluations: service.NewEvaluationService(st, l),
		Stats:       service.NewStatsService(st),
		Items:       service.NewItemService(st, l),
	}, config.Server{Host: "localhost", Port: 0}, l)
	require.NoError(t, err)
	return &testServer{server: server, storage: st, sessions: sessions}
}

// signedInAs stores the user and opens a session, returning the cookie a
// browser would carry.
func (ts *testServer) signedInAs(t *testing.T, username string, role users.Role) *http.Cookie {
	t.Helper()
	user, err := ts.storage.CreateUser(context.Background(), users.User{
		Username: username,
		Role:     role,
		TeamID:   1,
	}, "hash")
	require.NoError(t, err)
	token, err := ts.sessions.Create(user)
	require.NoError(t, err)
	return &http.Cookie{Name: "session_id", Value: token}
}

func (ts *testServer) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := ts.server.app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func (ts *testServer) get(t *testing.T, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return ts.do(t, req)
}

func (ts *testServer) postForm(t *testing.T, path string, cookie *http.Cookie, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return ts.do(t, req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestDashboardPlayerCount(t *testing.T) {
	ts := newTestServer(t)
	coach := ts.signedInAs(t, "coach", users.RoleCoach)
	ts.signedInAs(t, "p1", users.RolePlayer)
	ts.signedInAs(t, "p2", users.RolePlayer)

	resp := ts.get(t, "/", coach)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Hráči: 2")
}

func TestItemsListIsPublic(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/items", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewItemGate(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/items/new", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin", resp.Header.Get("Location"))

	coach := ts.signedInAs(t, "coach", users.RoleCoach)
	resp = ts.get(t, "/items/new", coach)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateItem(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.signedInAs(t, "boss", users.RoleAdmin)

	resp := ts.postForm(t, "/items/new", admin, url.Values{
		"name":        {"Klubový dres"},
		"description": {"zápasový dres s logom"},
		"price":       {"25.50"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/items", resp.Header.Get("Location"))

	resp = ts.get(t, "/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "Klubový dres")
	assert.Contains(t, page, "25.50")
}

func TestCreateItemRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.signedInAs(t, "boss", users.RoleAdmin)

	resp := ts.postForm(t, "/items/new", admin, url.Values{
		"name":  {"ab"},
		"price": {"-5"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "at least 3 characters")
	assert.Contains(t, page, "positive number")

	resp = ts.postForm(t, "/items/new", admin, url.Values{
		"name":  {"Lopta"},
		"price": {"lacná"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
