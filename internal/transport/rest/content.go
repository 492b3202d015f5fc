package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/internal/service/content"
)

// contentService defines the content operations the handler needs.
type contentService interface {
	CreateDraft(ctx context.Context, input content.CreateDraftInput) (domain.ContentItem, error)
	UpdateDraft(ctx context.Context, input content.UpdateDraftInput) (domain.ContentItem, error)
	Get(ctx context.Context, target domain.Target) (domain.ContentItem, error)
	Submit(ctx context.Context, target domain.Target) (content.SubmitResult, error)
	Retract(ctx context.Context, target domain.Target) (content.RetractResult, error)
}

// ContentHandler serves the draft and submission endpoints of one content
// type, mounted under /posts or /events.
type ContentHandler struct {
	svc contentService
	typ domain.ContentType
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler for content type typ.
func NewContentHandler(svc contentService, typ domain.ContentType, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		svc: svc,
		typ: typ,
		log: logger.With("handler", "content", "content_type", typ.String()),
	}
}

type createDraftRequest struct {
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Content  string     `json:"content"`
	IsPublic bool       `json:"isPublic"`
	StartsAt *time.Time `json:"startsAt"`
}

type updateDraftRequest struct {
	Title    *string    `json:"title"`
	Slug     *string    `json:"slug"`
	Content  *string    `json:"content"`
	IsPublic *bool      `json:"isPublic"`
	StartsAt *time.Time `json:"startsAt"`
}

// Create handles POST /posts and POST /events.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.svc.CreateDraft(r.Context(), content.CreateDraftInput{
		Type:     h.typ,
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		IsPublic: req.IsPublic,
		StartsAt: req.StartsAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toContentResponse(item))
}

// Get handles GET /{type}/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), target)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContentResponse(item))
}

// Update handles PATCH /{type}/{id}.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	var req updateDraftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.svc.UpdateDraft(r.Context(), content.UpdateDraftInput{
		Target:   target,
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		IsPublic: req.IsPublic,
		StartsAt: req.StartsAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContentResponse(item))
}

// Submit handles POST /{type}/{id}/submit.
func (h *ContentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Submit(r.Context(), target)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Content: toContentResponse(res.Content),
		Process: toProcessPtr(res.Process),
	})
}

// Retract handles POST /{type}/{id}/retract.
func (h *ContentHandler) Retract(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Retract(r.Context(), target)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, retractResponse{
		Content:          toContentResponse(res.Content),
		CancelledProcess: toProcessPtr(res.CancelledProcess),
	})
}

func (h *ContentHandler) target(w http.ResponseWriter, r *http.Request) (domain.Target, bool) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return domain.Target{}, false
	}
	return domain.Target{ID: id, Type: h.typ}, true
}

// pathUUID parses the named path value, writing a 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "invalid " + name,
			Fields:  []fieldErrorResponse{{Field: name, Message: "must be a UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}
