package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("tok", "acme/site", "main", "")
	require.NoError(t, err)
	c.SetBaseURL(srv.URL)
	return c
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("", "acme/site", "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient("tok", "", "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient("tok", "not-owner-slash-name", "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "owner/name")

	_, err = NewClient("tok", "acme/site", "main", "content")
	assert.NoError(t, err)
}

func TestGetFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/acme/site/contents/public/data/directory.json", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"type":    "file",
			"path":    "public/data/directory.json",
			"sha":     "abc123",
			"content": base64.StdEncoding.EncodeToString([]byte(`{"Talent":[]}`)),
		})
	})

	fc, err := c.GetFile(context.Background(), "public/data/directory.json")
	require.NoError(t, err)
	assert.Equal(t, "abc123", fc.SHA)
	assert.JSONEq(t, `{"Talent":[]}`, string(fc.Content))
}

func TestGetFile_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := c.GetFile(context.Background(), "missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGetFile_DirectoryListing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"type":"file","path":"a.json"}]`))
	})
	_, err := c.GetFile(context.Background(), "public/data")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGetFile_MultilineBase64(t *testing.T) {
	// The contents API wraps base64 at 60 columns with literal newlines.
	encoded := base64.StdEncoding.EncodeToString([]byte("hello world"))
	wrapped := encoded[:4] + "\n" + encoded[4:]
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"type": "file", "path": "a.txt", "sha": "s", "content": wrapped,
		})
	})
	fc, err := c.GetFile(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(fc.Content))
}

func TestPutFile_UpdateIncludesSHA(t *testing.T) {
	var put map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"type": "file", "path": "f.json", "sha": "oldsha",
				"content": base64.StdEncoding.EncodeToString([]byte("{}")),
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			w.WriteHeader(http.StatusOK)
		}
	})

	err := c.PutFile(context.Background(), "f.json", []byte(`{"a":1}`), "update f")
	require.NoError(t, err)
	assert.Equal(t, "oldsha", put["sha"])
	assert.Equal(t, "update f", put["message"])
	assert.Equal(t, "main", put["branch"])
	decoded, _ := base64.StdEncoding.DecodeString(put["content"].(string))
	assert.JSONEq(t, `{"a":1}`, string(decoded))
}

func TestPutFile_CreateOmitsSHA(t *testing.T) {
	var put map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			w.WriteHeader(http.StatusCreated)
		}
	})

	require.NoError(t, c.PutFile(context.Background(), "new.json", []byte("{}"), "create"))
	_, hasSHA := put["sha"]
	assert.False(t, hasSHA)
}

func TestDeleteFile(t *testing.T) {
	var del map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"type": "file", "path": "f.json", "sha": "delsha",
				"content": base64.StdEncoding.EncodeToString([]byte("{}")),
			})
		case http.MethodDelete:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&del))
			w.WriteHeader(http.StatusOK)
		}
	})

	require.NoError(t, c.DeleteFile(context.Background(), "f.json", "remove f"))
	assert.Equal(t, "delsha", del["sha"])
	assert.Equal(t, "remove f", del["message"])
}

func TestDeleteFile_Missing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	err := c.DeleteFile(context.Background(), "gone.json", "remove")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestWrite_SurfacesAPIMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "is at abc but expected def"})
	})
	err := c.PutFile(context.Background(), "f.json", []byte("{}"), "m")
	require.Error(t, err)
	assert.Equal(t, "github error (status 409): is at abc but expected def", err.Error())
}

func TestRepoPath_PrefixAndSlashCollapse(t *testing.T) {
	c, err := NewClient("tok", "acme/site", "", "/content//site/")
	require.NoError(t, err)
	assert.Equal(t, "content/site/public/data.json", c.repoPath("/public//data.json"))

	c2, err := NewClient("tok", "acme/site", "", "")
	require.NoError(t, err)
	assert.Equal(t, "public/data.json", c2.repoPath("public/data.json"))
}
