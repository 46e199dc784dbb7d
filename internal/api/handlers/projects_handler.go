package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/portfolio-studio/showcase/internal/api/middleware"
	"github.com/portfolio-studio/showcase/internal/api/types"
	"github.com/portfolio-studio/showcase/internal/services"
	appErr "github.com/portfolio-studio/showcase/pkg/errors"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

type ProjectsHandler struct {
	svc          services.ProjectService
	maxBodyBytes int64
}

func NewProjectsHandler(svc services.ProjectService, maxBodyBytes int64) *ProjectsHandler {
	return &ProjectsHandler{svc: svc, maxBodyBytes: maxBodyBytes}
}

// List writes every project as a JSON array, oldest first.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	req, err := decodeCreateRequest(r.Body)
	if err != nil {
		writeError(w, r, appErr.Wrap(err, appErr.CodeInvalid, services.MissingFieldsMessage))
		return
	}
	p, err := h.svc.CreateProject(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// decodeCreateRequest reads exactly one JSON value; anything after it other
// than whitespace makes the body invalid.
func decodeCreateRequest(body io.Reader) (types.ProjectCreateRequest, error) {
	var req types.ProjectCreateRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return req, err
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := types.FromAppError(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, body)
}
