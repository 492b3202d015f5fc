package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentItem is a post or an event subject to review. The workflow only
// reads and writes Status; the other fields are owned by the content layer.
type ContentItem struct {
	ID        uuid.UUID
	Type      ContentType
	Creator   Ref
	Title     string
	Slug      string
	Content   string
	Status    ContentStatus
	IsPublic  bool
	StartsAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Target returns the reference used by activities and processes.
func (c *ContentItem) Target() Target {
	return Target{ID: c.ID, Type: c.Type}
}

// CheckSubmittable verifies the preconditions every submission must meet
// before the publication policy is consulted.
func (c *ContentItem) CheckSubmittable() error {
	if c.Status == ContentStatusPending || c.Status == ContentStatusApproved {
		return ErrContentAlreadySubmitted
	}
	if strings.TrimSpace(c.Title) == "" {
		return ErrContentTitleRequired
	}
	if strings.TrimSpace(c.Slug) == "" {
		return ErrContentSlugRequired
	}
	if strings.TrimSpace(c.Content) == "" {
		return ErrContentContentRequired
	}
	return nil
}

// CheckRetractable verifies the content can be moved back to EDITING.
func (c *ContentItem) CheckRetractable() error {
	if c.Status == ContentStatusEditing {
		return ErrContentCannotRetract
	}
	return nil
}

// IsEditable reports whether non-workflow updates may touch the item.
func (c *ContentItem) IsEditable() bool {
	return c.Status == ContentStatusEditing || c.Status == ContentStatusRejected
}

// SubmittableFrom lists the statuses a submission may start from.
var SubmittableFrom = []ContentStatus{ContentStatusEditing, ContentStatusRejected}

// RetractableFrom lists the statuses a retraction may start from.
var RetractableFrom = []ContentStatus{ContentStatusPending, ContentStatusApproved, ContentStatusRejected}

// Target references the content item under review.
type Target struct {
	ID   uuid.UUID
	Type ContentType
}

// ContentUpdateParams holds the optional fields of a draft update.
type ContentUpdateParams struct {
	Title    *string
	Slug     *string
	Content  *string
	IsPublic *bool
	StartsAt *time.Time
}
