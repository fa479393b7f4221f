package comment

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pixfeed/service/internal/response"
)

// Handler holds HTTP handlers for the comment endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new comment Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// AddRequest is the JSON body accepted by the add_comment endpoint.
type AddRequest struct {
	MediaName string `json:"media_name"`
	Comment   string `json:"comment"`
	Username  string `json:"username"`
	ParentID  string `json:"parent_id"`
}

// Add godoc
//
//	@Summary		Add a comment
//	@Description	Stores a comment on a media object. parent_id threads a reply under another comment.
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AddRequest	true	"Comment to add"
//	@Success		200	{object}	Comment
//	@Failure		400	{string}	string	"Invalid body"
//	@Failure		404	{string}	string	"Not found"
//	@Failure		500	{string}	string
//	@Router			/add_comment [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.MediaName) == "" {
		response.BadRequest(w, "Missing media_name")
		return
	}
	if strings.TrimSpace(req.Comment) == "" {
		response.BadRequest(w, "Missing comment")
		return
	}
	if req.Username == "" {
		req.Username = "anonymous"
	}

	c, err := h.svc.Add(r.Context(), req.MediaName, req.Username, req.Comment, req.ParentID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, c)
}

// List godoc
//
//	@Summary		List comments
//	@Description	Returns all comments on a media object.
//	@Tags			comments
//	@Produce		json
//	@Param			media_name	query		string	true	"Media object name"
//	@Success		200	{array}		Comment
//	@Failure		400	{string}	string	"Missing media_name"
//	@Failure		404	{string}	string	"Not found"
//	@Failure		500	{string}	string
//	@Router			/get_comments [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mediaName := r.URL.Query().Get("media_name")
	if mediaName == "" {
		response.BadRequest(w, "Missing media_name")
		return
	}

	comments, err := h.svc.ListFor(r.Context(), mediaName)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, comments)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if h.svc.IsNotFound(err) {
		response.NotFound(w, "Not found")
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("comment operation failed")
	response.InternalError(w, err)
}
