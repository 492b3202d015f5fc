package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

type contentResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	CreatorID   string     `json:"creatorId"`
	CreatorKind string     `json:"creatorKind"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	IsPublic    *bool      `json:"isPublic,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type activityResponse struct {
	ID             string     `json:"id"`
	CreatorID      string     `json:"creatorId"`
	CreatorKind    string     `json:"creatorKind"`
	TargetID       string     `json:"targetId"`
	TargetType     string     `json:"targetType"`
	Action         string     `json:"action"`
	InitStatus     string     `json:"initStatus"`
	State          string     `json:"state"`
	HandlerID      *string    `json:"handlerId,omitempty"`
	HandlerKind    *string    `json:"handlerKind,omitempty"`
	ProcessedAt    *time.Time `json:"processedAt,omitempty"`
	AssignedStatus *string    `json:"assignedStatus,omitempty"`
	Comment        *string    `json:"comment,omitempty"`
	ExpireAt       *time.Time `json:"expireAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type processResponse struct {
	ID          string             `json:"id"`
	CreatorID   string             `json:"creatorId"`
	CreatorKind string             `json:"creatorKind"`
	TargetID    string             `json:"targetId"`
	TargetType  string             `json:"targetType"`
	Type        string             `json:"type"`
	Status      string             `json:"status"`
	ActivityIDs []string           `json:"activityIds"`
	ExpireAt    *time.Time         `json:"expireAt,omitempty"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	Activities  []activityResponse `json:"activities,omitempty"`
	Content     *contentResponse   `json:"content,omitempty"`
}

type submitResponse struct {
	Content contentResponse  `json:"content"`
	Process *processResponse `json:"process,omitempty"`
}

type retractResponse struct {
	Content          contentResponse  `json:"content"`
	CancelledProcess *processResponse `json:"cancelledProcess,omitempty"`
}

type operatorActionResponse struct {
	Activity activityResponse  `json:"activity"`
	Process  processResponse   `json:"process"`
	Content  *contentResponse  `json:"content,omitempty"`
	FollowUp *activityResponse `json:"followUp,omitempty"`
}

type processListResponse struct {
	Items []processResponse `json:"items"`
	Total int               `json:"total"`
}

func toContentResponse(c domain.ContentItem) contentResponse {
	resp := contentResponse{
		ID:          c.ID.String(),
		Type:        c.Type.String(),
		CreatorID:   c.Creator.ID.String(),
		CreatorKind: c.Creator.Kind.String(),
		Title:       c.Title,
		Slug:        c.Slug,
		Content:     c.Content,
		Status:      c.Status.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Type == domain.ContentTypeEvent {
		isPublic := c.IsPublic
		resp.IsPublic = &isPublic
		resp.StartsAt = c.StartsAt
	}
	return resp
}

func toActivityResponse(a domain.Activity) activityResponse {
	resp := activityResponse{
		ID:          a.ID.String(),
		CreatorID:   a.Creator.ID.String(),
		CreatorKind: a.Creator.Kind.String(),
		TargetID:    a.Target.ID.String(),
		TargetType:  a.Target.Type.String(),
		Action:      a.Action.String(),
		InitStatus:  a.InitStatus.String(),
		State:       a.State.String(),
		ProcessedAt: a.ProcessedAt,
		Comment:     a.Comment,
		ExpireAt:    a.ExpireAt,
		CreatedAt:   a.CreatedAt,
	}
	if a.Handler != nil {
		id, kind := a.Handler.ID.String(), a.Handler.Kind.String()
		resp.HandlerID = &id
		resp.HandlerKind = &kind
	}
	if a.AssignedStatus != nil {
		s := a.AssignedStatus.String()
		resp.AssignedStatus = &s
	}
	return resp
}

func toProcessResponse(p domain.Process) processResponse {
	return processResponse{
		ID:          p.ID.String(),
		CreatorID:   p.Creator.ID.String(),
		CreatorKind: p.Creator.Kind.String(),
		TargetID:    p.Target.ID.String(),
		TargetType:  p.Target.Type.String(),
		Type:        p.Type.String(),
		Status:      p.Status.String(),
		ActivityIDs: uuidStrings(p.ActivityIDs),
		ExpireAt:    p.ExpireAt,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
	}
}

func toProcessPtr(p *domain.Process) *processResponse {
	if p == nil {
		return nil
	}
	resp := toProcessResponse(*p)
	return &resp
}

func toActivities(activities []domain.Activity) []activityResponse {
	out := make([]activityResponse, len(activities))
	for i, a := range activities {
		out[i] = toActivityResponse(a)
	}
	return out
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
