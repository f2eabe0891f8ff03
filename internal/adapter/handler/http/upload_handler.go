package http

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FileStore is the storage surface handlers need. Satisfied by
// storage.LocalStore.
type FileStore interface {
	Save(src io.Reader, originalName string) (string, error)
	Open(name string) (*os.File, error)
}

// MultipartSaver adapts a FileStore to multipart form uploads.
type MultipartSaver struct {
	store FileStore
}

// NewMultipartSaver creates a multipart upload adapter.
func NewMultipartSaver(store FileStore) *MultipartSaver {
	return &MultipartSaver{store: store}
}

// SaveMultipart stores the named form file and returns the stored filename.
// A missing file field is not an error; it returns "".
func (m *MultipartSaver) SaveMultipart(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return m.store.Save(src, fh.Filename)
}

// UploadHandler serves stored files back to clients.
type UploadHandler struct {
	store  FileStore
	logger *zap.Logger
}

// NewUploadHandler creates an upload-serving handler.
func NewUploadHandler(store FileStore, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

// Serve handles GET /uploads/:name. The store sanitizes the name so path
// traversal cannot escape the upload directory.
func (h *UploadHandler) Serve(c echo.Context) error {
	f, err := h.store.Open(c.Param("name"))
	if err != nil {
		return httpError(c, err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(f.Name()))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, f)
}
