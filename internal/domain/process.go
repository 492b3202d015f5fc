package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Process is the aggregate tracking every activity of one submission's
// review. ActivityIDs is append-only and never empty.
type Process struct {
	ID          uuid.UUID
	Creator     Ref
	Target      Target
	Type        ProcessType
	ActivityIDs []uuid.UUID
	Status      ProcessStatus
	ExpireAt    *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// OpenProcess creates a PENDING process around its first activity.
func OpenProcess(first Activity, expireAt *time.Time, now time.Time) Process {
	return Process{
		ID:          uuid.New(),
		Creator:     first.Creator,
		Target:      first.Target,
		Type:        ProcessTypeApproval,
		ActivityIDs: []uuid.UUID{first.ID},
		Status:      ProcessStatusPending,
		ExpireAt:    expireAt,
		CreatedAt:   now,
	}
}

// IsPending reports whether the process still accepts activities.
func (p *Process) IsPending() bool {
	return p.Status == ProcessStatusPending
}

// CheckOpen returns ErrProcessClosed once the process reached a terminal status.
func (p *Process) CheckOpen() error {
	if !p.IsPending() {
		return ErrProcessClosed
	}
	return nil
}

// Append adds a follow-up activity to the chain.
func (p *Process) Append(activityID uuid.UUID) error {
	if err := p.CheckOpen(); err != nil {
		return err
	}
	p.ActivityIDs = append(p.ActivityIDs, activityID)
	return nil
}

// Finalize closes the process after a final decision.
func (p *Process) Finalize(now time.Time) error {
	if err := p.CheckOpen(); err != nil {
		return err
	}
	p.Status = ProcessStatusFinalized
	p.CompletedAt = &now
	return nil
}

// Cancel closes the process because the content was retracted.
func (p *Process) Cancel(now time.Time) error {
	if err := p.CheckOpen(); err != nil {
		return err
	}
	p.Status = ProcessStatusCancelled
	p.CompletedAt = &now
	return nil
}

// Contains reports whether activityID belongs to the process.
func (p *Process) Contains(activityID uuid.UUID) bool {
	return slices.Contains(p.ActivityIDs, activityID)
}

// LatestActivityID returns the most recently appended activity.
func (p *Process) LatestActivityID() uuid.UUID {
	if len(p.ActivityIDs) == 0 {
		return uuid.Nil
	}
	return p.ActivityIDs[len(p.ActivityIDs)-1]
}

// ProcessFilter selects processes for the operator queue.
type ProcessFilter struct {
	Status     *ProcessStatus
	TargetType *ContentType
	Limit      int
	Offset     int
}

// ProcessWithActivities is a process expanded with its ordered activities.
type ProcessWithActivities struct {
	Process    Process
	Activities []Activity
}
