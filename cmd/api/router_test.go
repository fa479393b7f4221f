package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixfeed/service/internal/comment"
	"github.com/pixfeed/service/internal/media"
	"github.com/pixfeed/service/internal/storage"
)

func newTestServer() http.Handler {
	return newRouter(storage.NewMemoryStorage(), 2*time.Hour)
}

func doRequest(t *testing.T, h http.Handler, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Origin", "http://localhost:5173")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestServer(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUpload_EmptyBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(t, srv, http.MethodPost, "/upload_media", "image/png", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded", rec.Body.String())

	// nothing was created
	rec = doRequest(t, srv, http.MethodGet, "/list_media", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUpload_DefaultsAndExtension(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(t, srv, http.MethodPost, "/upload_media", "image/png", []byte("img"))
	require.Equal(t, http.StatusOK, rec.Code)

	named := decodeJSON[map[string]string](t, rec)
	assert.True(t, strings.HasSuffix(named["name"], ".png"))

	rec = doRequest(t, srv, http.MethodGet, "/list_media", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeJSON[[]media.Post](t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, named["name"], posts[0].Name)
	assert.Equal(t, "anonymous", posts[0].Username)
	assert.Equal(t, "", posts[0].Caption)
	assert.Equal(t, 0, posts[0].Likes)
}

func TestUpload_UnrecognizedContentType(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestServer(), http.MethodPost, "/upload_media", "application/pdf", []byte("img"))
	require.Equal(t, http.StatusOK, rec.Code)
	named := decodeJSON[map[string]string](t, rec)
	assert.True(t, strings.HasSuffix(named["name"], ".jpg"))
}

func TestListEmptyFeed(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestServer(), http.MethodGet, "/list_media", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestFeedLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer()

	rec := doRequest(t, srv, http.MethodPost, "/upload_media?caption=golden+hour&username=alice", "image/jpeg", []byte("img"))
	require.Equal(t, http.StatusOK, rec.Code)
	name := decodeJSON[map[string]string](t, rec)["name"]

	// upload round-trips through the feed
	rec = doRequest(t, srv, http.MethodGet, "/list_media", "", nil)
	posts := decodeJSON[[]media.Post](t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, "golden hour", posts[0].Caption)
	assert.Equal(t, "alice", posts[0].Username)

	// two sequential likes
	rec = doRequest(t, srv, http.MethodPost, "/like_media?name="+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeJSON[map[string]int](t, rec)["likes"])

	rec = doRequest(t, srv, http.MethodPost, "/like_media?name="+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeJSON[map[string]int](t, rec)["likes"])

	// templated caption
	rec = doRequest(t, srv, http.MethodGet, "/ai_caption?name="+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	caption := decodeJSON[map[string]string](t, rec)["caption"]
	assert.Contains(t, caption, "@alice")
	assert.Contains(t, caption, "Visual storytelling at its finest.")

	// delete, then every operation on the name is a 404
	rec = doRequest(t, srv, http.MethodDelete, "/delete_media?name="+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, name, decodeJSON[map[string]string](t, rec)["deleted"])

	rec = doRequest(t, srv, http.MethodGet, "/list_media", "", nil)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	for _, probe := range []struct{ method, target string }{
		{http.MethodPost, "/like_media?name=" + name},
		{http.MethodDelete, "/delete_media?name=" + name},
		{http.MethodGet, "/ai_caption?name=" + name},
	} {
		rec = doRequest(t, srv, probe.method, probe.target, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", probe.method, probe.target)
		assert.Equal(t, "Not found", rec.Body.String())
	}
}

func TestMissingNameParameter(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	for _, probe := range []struct{ method, target string }{
		{http.MethodPost, "/like_media"},
		{http.MethodDelete, "/delete_media"},
		{http.MethodGet, "/ai_caption"},
	} {
		rec := doRequest(t, srv, probe.method, probe.target, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", probe.method, probe.target)
		assert.Equal(t, "Missing name", rec.Body.String())
	}
}

func TestSearchMedia(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(t, srv, http.MethodPost, "/upload_media?caption=mountain+lake&username=alice", "image/png", []byte("img"))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, srv, http.MethodPost, "/upload_media?caption=city+lights&username=bob", "image/png", []byte("img"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/search_media?q=LAKE", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeJSON[[]media.Post](t, rec)
	require.Len(t, posts, 1)
	assert.Equal(t, "alice", posts[0].Username)

	rec = doRequest(t, srv, http.MethodGet, "/search_media", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]media.Post](t, rec), 2)
}

func TestComments(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := doRequest(t, srv, http.MethodPost, "/upload_media", "image/png", []byte("img"))
	require.Equal(t, http.StatusOK, rec.Code)
	name := decodeJSON[map[string]string](t, rec)["name"]

	body, err := json.Marshal(map[string]string{"media_name": name, "comment": "stunning", "username": "bob"})
	require.NoError(t, err)
	rec = doRequest(t, srv, http.MethodPost, "/add_comment", "application/json", body)
	require.Equal(t, http.StatusOK, rec.Code)
	added := decodeJSON[comment.Comment](t, rec)
	assert.Equal(t, "stunning", added.Comment)
	assert.Equal(t, "bob", added.Username)

	rec = doRequest(t, srv, http.MethodGet, "/get_comments?media_name="+name, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decodeJSON[[]comment.Comment](t, rec)
	require.Len(t, comments, 1)
	assert.Equal(t, added.ID, comments[0].ID)

	// comment objects never leak into the feed
	rec = doRequest(t, srv, http.MethodGet, "/list_media", "", nil)
	assert.Len(t, decodeJSON[[]media.Post](t, rec), 1)

	// unknown media
	body, err = json.Marshal(map[string]string{"media_name": "missing.jpg", "comment": "hi"})
	require.NoError(t, err)
	rec = doRequest(t, srv, http.MethodPost, "/add_comment", "application/json", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/get_comments?media_name=missing.jpg", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// malformed body
	rec = doRequest(t, srv, http.MethodPost, "/add_comment", "application/json", []byte("{oops"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptionsPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	for _, route := range apiRoutes {
		req := httptest.NewRequest(http.MethodOptions, route, nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, route)
		assert.Empty(t, rec.Body.String(), route)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), route)
	}
}

func TestCORSHeadersOnActualRequests(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestServer(), http.MethodGet, "/list_media", "", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()

	// the counter only renders once a request has been observed
	rec := doRequest(t, srv, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pixfeed_http_requests_total")
}
