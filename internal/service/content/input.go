package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

const (
	maxTitleLength   = 200
	maxSlugLength    = 200
	maxContentLength = 100_000
)

// CreateDraftInput holds the parameters for a new draft.
type CreateDraftInput struct {
	Type     domain.ContentType
	Title    string
	Slug     string
	Content  string
	IsPublic bool
	StartsAt *time.Time
}

// Validate checks all fields and collects all errors. Empty title, slug and
// body are allowed in a draft; submission enforces them.
func (i CreateDraftInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be POST or EVENT"})
	}
	errs = appendLengthErrors(errs, &i.Title, &i.Slug, &i.Content)
	if i.Type == domain.ContentTypePost && (i.IsPublic || i.StartsAt != nil) {
		errs = append(errs, domain.FieldError{Field: "is_public", Message: "only events carry visibility and start time"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDraftInput holds the parameters for editing a draft.
type UpdateDraftInput struct {
	Target   domain.Target
	Title    *string
	Slug     *string
	Content  *string
	IsPublic *bool
	StartsAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateDraftInput) Validate() error {
	var errs []domain.FieldError

	errs = appendTargetErrors(errs, i.Target)
	if i.Title == nil && i.Slug == nil && i.Content == nil && i.IsPublic == nil && i.StartsAt == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = appendLengthErrors(errs, i.Title, i.Slug, i.Content)
	if i.Target.Type == domain.ContentTypePost && (i.IsPublic != nil || i.StartsAt != nil) {
		errs = append(errs, domain.FieldError{Field: "is_public", Message: "only events carry visibility and start time"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateDraftInput) params() domain.ContentUpdateParams {
	return domain.ContentUpdateParams{
		Title:    trimmed(i.Title),
		Slug:     trimmed(i.Slug),
		Content:  i.Content,
		IsPublic: i.IsPublic,
		StartsAt: i.StartsAt,
	}
}

// validateTarget checks a bare target reference.
func validateTarget(t domain.Target) error {
	if errs := appendTargetErrors(nil, t); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendTargetErrors(errs []domain.FieldError, t domain.Target) []domain.FieldError {
	if t.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !t.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be POST or EVENT"})
	}
	return errs
}

func appendLengthErrors(errs []domain.FieldError, title, slug, content *string) []domain.FieldError {
	if title != nil && len(strings.TrimSpace(*title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if slug != nil && len(strings.TrimSpace(*slug)) > maxSlugLength {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "max 200 characters"})
	}
	if content != nil && len(*content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 100000 characters"})
	}
	return errs
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
