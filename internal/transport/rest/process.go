package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/internal/service/workflow"
	"github.com/heartmarshall/contentflow-backend/internal/transport/dataloader"
)

const defaultPageSize = 50

// workflowService defines the operator-facing workflow operations.
type workflowService interface {
	ListProcesses(ctx context.Context, input workflow.ListProcessesInput) ([]domain.Process, int, error)
	GetProcess(ctx context.Context, id uuid.UUID) (domain.ProcessWithActivities, error)
	ApplyOperatorAction(ctx context.Context, input workflow.OperatorActionInput) (workflow.OperatorActionResult, error)
}

// ProcessHandler serves the operator review queue.
type ProcessHandler struct {
	svc workflowService
	log *slog.Logger
}

// NewProcessHandler creates a ProcessHandler.
func NewProcessHandler(svc workflowService, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{svc: svc, log: logger.With("handler", "process")}
}

type operatorActionRequest struct {
	Action  string  `json:"action"`
	Comment *string `json:"comment"`
	IsFinal bool    `json:"isFinal"`
}

// List returns a page of processes expanded with their activities and content.
// GET /processes?status=PENDING&targetType=POST&limit=50&offset=0
func (h *ProcessHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	procs, total, err := h.svc.ListProcesses(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := expandProcesses(r.Context(), procs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, processListResponse{Items: items, Total: total})
}

// Get handles GET /processes/{process_id}.
func (h *ProcessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "process_id")
	if !ok {
		return
	}

	pwa, err := h.svc.GetProcess(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := toProcessResponse(pwa.Process)
	resp.Activities = toActivities(pwa.Activities)
	writeJSON(w, http.StatusOK, resp)
}

// Act handles PATCH /processes/{process_id}/{activity_id}.
func (h *ProcessHandler) Act(w http.ResponseWriter, r *http.Request) {
	processID, ok := pathUUID(w, r, "process_id")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activity_id")
	if !ok {
		return
	}

	var req operatorActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.ApplyOperatorAction(r.Context(), workflow.OperatorActionInput{
		ProcessID:  processID,
		ActivityID: activityID,
		Action:     domain.ActivityAction(req.Action),
		Comment:    req.Comment,
		IsFinal:    req.IsFinal,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := operatorActionResponse{
		Activity: toActivityResponse(res.Activity),
		Process:  toProcessResponse(res.Process),
	}
	if res.Content != nil {
		c := toContentResponse(*res.Content)
		resp.Content = &c
	}
	if res.FollowUp != nil {
		a := toActivityResponse(*res.FollowUp)
		resp.FollowUp = &a
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseListQuery(r *http.Request) (workflow.ListProcessesInput, error) {
	q := r.URL.Query()
	input := workflow.ListProcessesInput{Limit: defaultPageSize}
	var errs []domain.FieldError

	if v := q.Get("status"); v != "" {
		s := domain.ProcessStatus(v)
		input.Status = &s
	}
	if v := q.Get("targetType"); v != "" {
		t := domain.ContentType(v)
		input.TargetType = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// expandProcesses attaches activities and content to every process. All
// loads are queued before any thunk is resolved so each loader issues one
// batch per page.
func expandProcesses(ctx context.Context, procs []domain.Process) ([]processResponse, error) {
	loaders := dataloader.FromContext(ctx)

	type pending struct {
		activities func() ([]domain.Activity, []error)
		content    func() (domain.ContentItem, error)
	}
	queued := make([]pending, len(procs))
	for i, p := range procs {
		queued[i] = pending{
			activities: loaders.ActivityByID.LoadMany(ctx, p.ActivityIDs),
			content:    loaders.ContentByTarget.Load(ctx, p.Target),
		}
	}

	items := make([]processResponse, len(procs))
	for i, p := range procs {
		resp := toProcessResponse(p)

		activities, errs := queued[i].activities()
		if err := firstError(errs); err != nil {
			return nil, fmt.Errorf("load activities of process %s: %w", p.ID, err)
		}
		resp.Activities = toActivities(activities)

		item, err := queued[i].content()
		switch {
		case err == nil:
			c := toContentResponse(item)
			resp.Content = &c
		case errors.Is(err, domain.ErrNotFound):
			// Content deleted outside the workflow; the process is still listed.
		default:
			return nil, fmt.Errorf("load content of process %s: %w", p.ID, err)
		}

		items[i] = resp
	}
	return items, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
