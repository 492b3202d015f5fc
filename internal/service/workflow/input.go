package workflow

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

const (
	maxCommentLength = 2000
	maxPageSize      = 200
)

// OperatorActionInput holds the parameters of an operator action on one
// activity of a process.
type OperatorActionInput struct {
	ProcessID  uuid.UUID
	ActivityID uuid.UUID
	Action     domain.ActivityAction
	Comment    *string
	IsFinal    bool
}

// Validate checks all fields and collects all errors.
func (i OperatorActionInput) Validate() error {
	var errs []domain.FieldError

	if i.ProcessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "process_id", Message: "required"})
	}
	if i.ActivityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	if !i.Action.IsOperatorAction() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be one of HOLD, CANCEL, APPROVE, REJECT"})
	}
	if i.Comment != nil && len(*i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// decision maps a resolving action onto the status it assigns.
func (i OperatorActionInput) decision() (domain.ContentStatus, bool) {
	switch i.Action {
	case domain.ActivityActionApprove:
		return domain.ContentStatusApproved, true
	case domain.ActivityActionReject:
		return domain.ContentStatusRejected, true
	}
	return "", false
}

// ListProcessesInput holds the operator queue filter.
type ListProcessesInput struct {
	Status     *domain.ProcessStatus
	TargetType *domain.ContentType
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListProcessesInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.TargetType != nil && !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "invalid value"})
	}
	if i.Limit < 0 || i.Limit > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
