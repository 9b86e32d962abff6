// Package github wraps the small slice of the GitHub contents API that the
// admin write path needs: read a file (for its blob SHA and contents),
// commit a file's full contents, and delete a file. Every write is a
// commit with an operator-supplied message, which is what makes the
// JSON-file backend version controlled.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured indicates the token or repository identifier is
// missing or malformed. Handlers translate this into HTTP 503.
var ErrNotConfigured = errors.New("github not configured")

// ErrFileNotFound indicates the target path does not exist in the repo
// (or resolves to a directory, which the admin surface never operates
// on). Handlers translate this into HTTP 404.
var ErrFileNotFound = errors.New("file not found")

// Client talks to the GitHub contents API for one repository.
type Client struct {
	token   string
	owner   string
	repo    string
	branch  string // empty = repository default branch
	prefix  string // optional path prefix prepended to every request path
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the repository identified as
// "owner/name". It returns ErrNotConfigured when the token or repo is
// absent or the repo identifier is not owner/name shaped, so the caller
// can distinguish misconfiguration from request failures.
func NewClient(token, repo, branch, pathPrefix string) (*Client, error) {
	if token == "" || repo == "" {
		return nil, ErrNotConfigured
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("%w: repo must be owner/name", ErrNotConfigured)
	}
	return &Client{
		token:   token,
		owner:   owner,
		repo:    name,
		branch:  branch,
		prefix:  pathPrefix,
		baseURL: "https://api.github.com",
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// SetBaseURL points the client at a different API host. Tests use this
// with an httptest server.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

// FileContent is a decoded contents API response for a single file.
type FileContent struct {
	Path    string
	SHA     string
	Content []byte
}

// contentResponse is the wire shape of a file from the contents API.
type contentResponse struct {
	Type     string `json:"type"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// apiError is the wire shape of a GitHub error body.
type apiError struct {
	Message string `json:"message"`
}

// GetFile fetches a file's current contents and blob SHA. It returns
// ErrFileNotFound for a missing path or a directory.
func (c *Client) GetFile(ctx context.Context, path string) (*FileContent, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if c.branch != "" {
		q := req.URL.Query()
		q.Set("ref", c.branch)
		req.URL.RawQuery = q.Encode()
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github api call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrFileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read github response: %w", err)
	}
	// A directory listing decodes as a JSON array; the admin surface only
	// ever targets files.
	if len(body) > 0 && body[0] == '[' {
		return nil, ErrFileNotFound
	}
	var cr contentResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	if cr.Type != "" && cr.Type != "file" {
		return nil, ErrFileNotFound
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(cr.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}
	return &FileContent{Path: cr.Path, SHA: cr.SHA, Content: decoded}, nil
}

// PutFile commits content as the full contents of path. When the file
// already exists its blob SHA is included so the API treats the commit as
// an update; otherwise the file is created.
func (c *Client) PutFile(ctx context.Context, path string, content []byte, message string) error {
	var sha string
	if existing, err := c.GetFile(ctx, path); err == nil {
		sha = existing.SHA
	} else if !errors.Is(err, ErrFileNotFound) {
		return err
	}

	payload := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
	}
	if sha != "" {
		payload["sha"] = sha
	}
	if c.branch != "" {
		payload["branch"] = c.branch
	}
	return c.write(ctx, http.MethodPut, path, payload)
}

// DeleteFile removes path with a commit carrying message. It returns
// ErrFileNotFound when the path does not exist.
func (c *Client) DeleteFile(ctx context.Context, path string, message string) error {
	existing, err := c.GetFile(ctx, path)
	if err != nil {
		return err
	}
	payload := map[string]any{
		"message": message,
		"sha":     existing.SHA,
	}
	if c.branch != "" {
		payload["branch"] = c.branch
	}
	return c.write(ctx, http.MethodDelete, path, payload)
}

// write sends a PUT or DELETE with a JSON body and maps non-2xx
// responses to errors carrying GitHub's message text.
func (c *Client) write(ctx context.Context, method, path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("github api call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readError(resp)
	}
	return nil
}

// newRequest builds an authenticated contents API request for path.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, c.repoPath(path))
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	return req, nil
}

// repoPath joins the configured prefix with path and collapses duplicate
// slashes.
func (c *Client) repoPath(path string) string {
	p := path
	if c.prefix != "" {
		p = c.prefix + "/" + path
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return strings.TrimPrefix(p, "/")
}

// readError turns a non-2xx response into an error with GitHub's own
// message so operators see the backend's text verbatim.
func readError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	var ae apiError
	if err := json.Unmarshal(raw, &ae); err == nil && ae.Message != "" {
		return fmt.Errorf("github error (status %d): %s", resp.StatusCode, ae.Message)
	}
	return fmt.Errorf("github error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
}
