package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callboardhq/callboard/internal/config"
	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/github"
	"github.com/callboardhq/callboard/internal/utils"
)

// fakeStore is an in-memory DirectoryStore with scriptable failures.
type fakeStore struct {
	sections directory.Sections
	saveErr  error
	saved    directory.Sections
	database bool
}

func (f *fakeStore) LoadSections(ctx context.Context) (directory.Sections, error) {
	return f.sections, nil
}

func (f *fakeStore) SaveSections(ctx context.Context, s directory.Sections) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = s
	return nil
}

func (f *fakeStore) UsesDatabase() bool { return f.database }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := utils.HashPassword("hunter2", 4)
	require.NoError(t, err)
	return config.Config{
		Env:               "test",
		JWTSecret:         "test-secret",
		AdminPasswordHash: hash,
		AdminCookieName:   "callboard_admin",
		SessionTTLMin:     60,
	}
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	h := NewAdminHandler(testConfig(t), &fakeStore{database: true}, nil)
	c, rec := postJSON("/v1/admin/login", `{"password":"hunter2"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "callboard_admin", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NoError(t, utils.VerifyAdminToken("test-secret", cookies[0].Value))
}

func TestLogin_WrongPassword(t *testing.T) {
	h := NewAdminHandler(testConfig(t), &fakeStore{}, nil)
	c, rec := postJSON("/v1/admin/login", `{"password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout_ExpiresCookie(t *testing.T) {
	h := NewAdminHandler(testConfig(t), &fakeStore{}, nil)
	c, rec := postJSON("/v1/admin/logout", "")

	require.NoError(t, h.Logout(c))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestDataSource_ReportsBackend(t *testing.T) {
	for _, useDB := range []bool{true, false} {
		h := NewAdminHandler(testConfig(t), &fakeStore{database: useDB}, nil)
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/data-source", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.DataSource(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		if useDB {
			assert.JSONEq(t, `{"useSupabase":true}`, rec.Body.String())
		} else {
			assert.JSONEq(t, `{"useSupabase":false}`, rec.Body.String())
		}
	}
}

func TestSaveDirectory_Success(t *testing.T) {
	st := &fakeStore{database: true}
	h := NewAdminHandler(testConfig(t), st, nil)
	c, rec := postJSON("/v1/admin/directory",
		`{"directory":{"Talent":[{"id":"jd","name":"Jane Doe","description":"Acts."}]}}`)

	require.NoError(t, h.SaveDirectory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.NotNil(t, st.saved)
	assert.Len(t, st.saved["Talent"], 1)
}

func TestSaveDirectory_MissingMapping(t *testing.T) {
	h := NewAdminHandler(testConfig(t), &fakeStore{}, nil)
	c, rec := postJSON("/v1/admin/directory", `{}`)

	require.NoError(t, h.SaveDirectory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveDirectory_StoreErrorPassedThrough(t *testing.T) {
	st := &fakeStore{saveErr: errors.New("github error (status 500): boom")}
	h := NewAdminHandler(testConfig(t), st, nil)
	c, rec := postJSON("/v1/admin/directory", `{"directory":{}}`)

	require.NoError(t, h.SaveDirectory(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"github error (status 500): boom"}`, rec.Body.String())
}

func TestSaveDirectory_UnconfiguredBackendIs503(t *testing.T) {
	st := &fakeStore{saveErr: github.ErrNotConfigured}
	h := NewAdminHandler(testConfig(t), st, nil)
	c, rec := postJSON("/v1/admin/directory", `{"directory":{}}`)

	require.NoError(t, h.SaveDirectory(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"GitHub not configured (GITHUB_TOKEN, GITHUB_REPO)"}`, rec.Body.String())
}

func TestSaveFile_NoClientIs503(t *testing.T) {
	h := NewAdminHandler(testConfig(t), &fakeStore{}, nil)
	c, rec := postJSON("/v1/admin/save", `{"path":"a.json","content":"{}","message":"m"}`)

	require.NoError(t, h.SaveFile(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"GitHub not configured (GITHUB_TOKEN, GITHUB_REPO)"}`, rec.Body.String())
}

func TestDeleteFile_Taxonomy(t *testing.T) {
	gh := ghStub(t, http.StatusNotFound, "")

	cases := []struct {
		name       string
		client     *github.Client
		body       string
		wantStatus int
		wantError  string
	}{
		{"no client", nil, `{"path":"a.json","message":"m"}`,
			http.StatusServiceUnavailable, "GitHub not configured (GITHUB_TOKEN, GITHUB_REPO)"},
		{"malformed body", gh, `{not json`,
			http.StatusBadRequest, "Invalid JSON"},
		{"missing path", gh, `{"message":"m"}`,
			http.StatusBadRequest, "path and message are required"},
		{"missing message", gh, `{"path":"a.json"}`,
			http.StatusBadRequest, "path and message are required"},
		{"file absent", gh, `{"path":"gone.json","message":"m"}`,
			http.StatusNotFound, "File not found or path is a directory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAdminHandler(testConfig(t), &fakeStore{}, tc.client)
			c, rec := postJSON("/v1/admin/delete", tc.body)

			require.NoError(t, h.DeleteFile(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantError)
		})
	}
}

// ghStub returns a client whose API host always answers status with body.
func ghStub(t *testing.T, status int, body string) *github.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	client, err := github.NewClient("tok", "acme/site", "", "")
	require.NoError(t, err)
	client.SetBaseURL(srv.URL)
	return client
}
