package domain

// ContentType is the closed set of content kinds that go through review.
type ContentType string

const (
	ContentTypePost  ContentType = "POST"
	ContentTypeEvent ContentType = "EVENT"
)

func (t ContentType) String() string { return string(t) }

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypePost, ContentTypeEvent:
		return true
	}
	return false
}

// ContentStatus is the publication status of a content item.
type ContentStatus string

const (
	ContentStatusEditing  ContentStatus = "EDITING"
	ContentStatusPending  ContentStatus = "PENDING"
	ContentStatusApproved ContentStatus = "APPROVED"
	ContentStatusRejected ContentStatus = "REJECTED"
)

func (s ContentStatus) String() string { return string(s) }

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusEditing, ContentStatusPending, ContentStatusApproved, ContentStatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a status an operator may assign.
func (s ContentStatus) IsDecision() bool {
	return s == ContentStatusApproved || s == ContentStatusRejected
}

// ActorKind discriminates the owning user collection of an id
// (the creatorRef / handlerRef of a record).
type ActorKind string

const (
	ActorKindConsumer ActorKind = "CONSUMER"
	ActorKindPlatform ActorKind = "PLATFORM"
)

func (k ActorKind) String() string { return string(k) }

func (k ActorKind) IsValid() bool {
	switch k {
	case ActorKindConsumer, ActorKindPlatform:
		return true
	}
	return false
}

// ActivityAction is the symbolic name of the step an activity represents.
type ActivityAction string

const (
	ActivityActionSubmit  ActivityAction = "SUBMIT"
	ActivityActionRetract ActivityAction = "RETRACT"
	ActivityActionRequest ActivityAction = "REQUEST"
	ActivityActionHold    ActivityAction = "HOLD"
	ActivityActionApprove ActivityAction = "APPROVE"
	ActivityActionReject  ActivityAction = "REJECT"
	ActivityActionCancel  ActivityAction = "CANCEL"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionSubmit, ActivityActionRetract, ActivityActionRequest,
		ActivityActionHold, ActivityActionApprove, ActivityActionReject, ActivityActionCancel:
		return true
	}
	return false
}

// IsOperatorAction reports whether a can be applied by an operator to an activity.
func (a ActivityAction) IsOperatorAction() bool {
	switch a {
	case ActivityActionHold, ActivityActionCancel, ActivityActionApprove, ActivityActionReject:
		return true
	}
	return false
}

// ActivityState is the lifecycle state of a single review step.
type ActivityState string

const (
	ActivityStateReady      ActivityState = "READY"
	ActivityStateProcessing ActivityState = "PROCESSING"
	ActivityStateCompleted  ActivityState = "COMPLETED"
)

func (s ActivityState) String() string { return string(s) }

func (s ActivityState) IsValid() bool {
	switch s {
	case ActivityStateReady, ActivityStateProcessing, ActivityStateCompleted:
		return true
	}
	return false
}

// ProcessType is the kind of workflow a process runs.
type ProcessType string

const (
	ProcessTypeApproval ProcessType = "APPROVAL"
)

func (t ProcessType) String() string { return string(t) }

func (t ProcessType) IsValid() bool {
	return t == ProcessTypeApproval
}

// ProcessStatus is the lifecycle status of an approval process.
type ProcessStatus string

const (
	ProcessStatusPending   ProcessStatus = "PENDING"
	ProcessStatusCancelled ProcessStatus = "CANCELLED"
	ProcessStatusFinalized ProcessStatus = "FINALIZED"
)

func (s ProcessStatus) String() string { return string(s) }

func (s ProcessStatus) IsValid() bool {
	switch s {
	case ProcessStatusPending, ProcessStatusCancelled, ProcessStatusFinalized:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave s.
func (s ProcessStatus) IsTerminal() bool {
	return s == ProcessStatusCancelled || s == ProcessStatusFinalized
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypePost     EntityType = "POST"
	EntityTypeEvent    EntityType = "EVENT"
	EntityTypeActivity EntityType = "ACTIVITY"
	EntityTypeProcess  EntityType = "PROCESS"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypePost, EntityTypeEvent, EntityTypeActivity, EntityTypeProcess:
		return true
	}
	return false
}

// EntityTypeFor maps a content type onto its audit entity type.
func EntityTypeFor(t ContentType) EntityType {
	if t == ContentTypeEvent {
		return EntityTypeEvent
	}
	return EntityTypePost
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionSubmit   AuditAction = "SUBMIT"
	AuditActionRetract  AuditAction = "RETRACT"
	AuditActionHold     AuditAction = "HOLD"
	AuditActionRelease  AuditAction = "RELEASE"
	AuditActionResolve  AuditAction = "RESOLVE"
	AuditActionFinalize AuditAction = "FINALIZE"
	AuditActionCancel   AuditAction = "CANCEL"
	AuditActionChain    AuditAction = "CHAIN"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionSubmit, AuditActionRetract,
		AuditActionHold, AuditActionRelease, AuditActionResolve, AuditActionFinalize,
		AuditActionCancel, AuditActionChain:
		return true
	}
	return false
}
