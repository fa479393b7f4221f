package media

import (
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pixfeed/service/internal/response"
)

// Handler holds HTTP handlers for the media feed endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new media Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Stores the raw request body as a new media object. The file extension is derived from the Content-Type header.
//	@Tags			media
//	@Accept			octet-stream
//	@Produce		json
//	@Param			caption		query	string	false	"Caption text"
//	@Param			username	query	string	false	"Author name"	default(anonymous)
//	@Success		200	{object}	map[string]string
//	@Failure		400	{string}	string	"No file uploaded"
//	@Failure		500	{string}	string
//	@Router			/upload_media [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(body) == 0 {
		response.BadRequest(w, "No file uploaded")
		return
	}

	q := r.URL.Query()
	caption := q.Get("caption")
	username := "anonymous"
	if q.Has("username") {
		username = q.Get("username")
	}

	name, err := h.svc.Upload(r.Context(), body, r.Header.Get("Content-Type"), caption, username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, map[string]string{"name": name})
}

// List godoc
//
//	@Summary		List the feed
//	@Description	Returns every media object with its metadata and a 2-hour signed read URL.
//	@Tags			media
//	@Produce		json
//	@Success		200	{array}		Post
//	@Failure		500	{string}	string
//	@Router			/list_media [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, posts)
}

// Search godoc
//
//	@Summary		Search the feed
//	@Description	Returns feed entries whose caption or username contains the query, case-insensitively.
//	@Tags			media
//	@Produce		json
//	@Param			q	query		string	false	"Search text"
//	@Success		200	{array}		Post
//	@Failure		500	{string}	string
//	@Router			/search_media [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, posts)
}

// Like godoc
//
//	@Summary		Like a media object
//	@Description	Increments the object's like counter by one.
//	@Tags			media
//	@Produce		json
//	@Param			name	query		string	true	"Object name"
//	@Success		200	{object}	map[string]int
//	@Failure		400	{string}	string	"Missing name"
//	@Failure		404	{string}	string	"Not found"
//	@Failure		500	{string}	string
//	@Router			/like_media [post]
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "Missing name")
		return
	}

	likes, err := h.svc.Like(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, map[string]int{"likes": likes})
}

// Delete godoc
//
//	@Summary		Delete a media object
//	@Description	Permanently removes the object and its metadata.
//	@Tags			media
//	@Produce		json
//	@Param			name	query		string	true	"Object name"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{string}	string	"Missing name"
//	@Failure		404	{string}	string	"Not found"
//	@Failure		500	{string}	string
//	@Router			/delete_media [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "Missing name")
		return
	}

	if err := h.svc.Delete(r.Context(), name); err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, map[string]string{"deleted": name})
}

// AICaption godoc
//
//	@Summary		Generate a caption
//	@Description	Renders a templated caption from the object's author and upload date.
//	@Tags			media
//	@Produce		json
//	@Param			name	query		string	true	"Object name"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{string}	string	"Missing name"
//	@Failure		404	{string}	string	"Not found"
//	@Failure		500	{string}	string
//	@Router			/ai_caption [get]
func (h *Handler) AICaption(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "Missing name")
		return
	}

	caption, err := h.svc.Caption(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, map[string]string{"caption": caption})
}

// fail maps a service error onto the HTTP response: absent objects become 404,
// everything else is a 500 with the error text in the body and a log entry.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if h.svc.IsNotFound(err) {
		response.NotFound(w, "Not found")
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("media operation failed")
	response.InternalError(w, err)
}
