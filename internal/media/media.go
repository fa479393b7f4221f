// Package media implements the photo feed: uploads, listing, likes, deletion,
// and the templated caption endpoint. A media object's binary content lives in
// the storage bucket and all of its mutable state (caption, author, like
// count, upload time) lives in the object's metadata record.
package media

// Metadata keys attached to every media object.
const (
	metaCaption    = "caption"
	metaUsername   = "username"
	metaLikes      = "likes"
	metaUploadedAt = "uploaded_at"
)

// Post is one feed entry returned by the list and search endpoints.
type Post struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Caption    string `json:"caption"`
	Username   string `json:"username"`
	Likes      int    `json:"likes"`
	UploadedAt string `json:"uploaded_at"`
}

// extByContentType maps upload content types to stored file extensions.
// Anything unrecognized falls back to jpg.
var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}
