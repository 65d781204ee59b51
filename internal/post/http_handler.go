package post

import (
	"errors"
	"net/http"

	"blogapi/internal/httpx"
	"blogapi/internal/record"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Routes registers the post endpoints on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Route("/posts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

type createReq struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

type updateReq struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	Category *string `json:"category"`
}

type listFilter struct {
	Category string `validate:"omitempty,oneof=Fiction Non-Fiction"`
}

// Create handles POST /v1/posts
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Create(r.Context(), Fields(req))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, p)
}

// List handles GET /v1/posts
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page, details := httpx.ParsePage(r)
	filter := listFilter{Category: r.URL.Query().Get("category")}
	details = append(details, httpx.ValidateStruct(filter)...)
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query", details)
		return
	}

	posts, total, err := h.service.List(r.Context(), Query{
		Category: filter.Category,
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, posts, httpx.PageMeta(page.Page, page.PageSize, total))
}

// Get handles GET /v1/posts/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, p, nil)
}

// Update handles PATCH /v1/posts/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req updateReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Update(r.Context(), id, Patch(req))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, p, nil)
}

// Delete handles DELETE /v1/posts/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, details := httpx.ParseID(chi.URLParam(r, "id"))
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid post id", details)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := record.AsValidationError(err); ok {
		httpx.JSONRecordInvalid(w, r, ve)
		return
	}
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
		return
	}
	h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("post request failed")
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
