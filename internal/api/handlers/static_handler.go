package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfolio-studio/showcase/internal/api/middleware"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

// StaticHandler serves files from a directory on disk.
type StaticHandler struct {
	root  string
	index string
}

func NewStaticHandler(root, index string) *StaticHandler {
	return &StaticHandler{root: root, index: index}
}

// Index serves the index document for "/".
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.index)
}

// File serves the path captured by the router's catch-all.
func (h *StaticHandler) File(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chi.URLParam(r, "*"))
}

// serve resolves name below root. Cleaning against "/" keeps ".." from
// escaping the root. Anything that cannot be opened as a regular file is a 404.
func (h *StaticHandler) serve(w http.ResponseWriter, r *http.Request, name string) {
	full := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+name)))

	f, err := os.Open(full)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.L().Debug("open static file failed",
				zap.String("id", middleware.GetRequestID(r.Context())),
				zap.String("file", full),
				zap.Error(err),
			)
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil || st.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, st.Name(), st.ModTime(), f)
}
