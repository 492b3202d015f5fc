package workflow

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"sync"
	"time"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ClaimFunc       func(ctx context.Context, id uuid.UUID, op domain.Ref, now time.Time) (domain.Activity, error)
	CreateFunc      func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	GetByIDsFunc    func(ctx context.Context, ids []uuid.UUID) ([]domain.Activity, error)
	ListExpiredFunc func(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error)
	ReleaseFunc     func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	ResolveFunc     func(ctx context.Context, id uuid.UUID, op domain.Ref, decision domain.ContentStatus, comment *string, now time.Time) (domain.Activity, error)

	calls struct {
		Claim []struct {
			Ctx context.Context
			Id  uuid.UUID
			Op  domain.Ref
			Now time.Time
		}
		Create []struct {
			Ctx context.Context
			A   domain.Activity
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		ListExpired []struct {
			Ctx   context.Context
			Now   time.Time
			Limit int
		}
		Release []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Resolve []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Op       domain.Ref
			Decision domain.ContentStatus
			Comment  *string
			Now      time.Time
		}
	}
	lockClaim       sync.RWMutex
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetByIDs    sync.RWMutex
	lockListExpired sync.RWMutex
	lockRelease     sync.RWMutex
	lockResolve     sync.RWMutex
}

func (mock *activityRepoMock) Claim(ctx context.Context, id uuid.UUID, op domain.Ref, now time.Time) (domain.Activity, error) {
	if mock.ClaimFunc == nil {
		panic("activityRepoMock.ClaimFunc: method is nil but activityRepo.Claim was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Op  domain.Ref
		Now time.Time
	}{Ctx: ctx, Id: id, Op: op, Now: now}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, id, op, now)
}

func (mock *activityRepoMock) ClaimCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Op  domain.Ref
	Now time.Time
} {
	mock.lockClaim.RLock()
	calls := mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

func (mock *activityRepoMock) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Activity
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Activity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *activityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *activityRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Activity, error) {
	if mock.GetByIDsFunc == nil {
		panic("activityRepoMock.GetByIDsFunc: method is nil but activityRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *activityRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListExpired(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error) {
	if mock.ListExpiredFunc == nil {
		panic("activityRepoMock.ListExpiredFunc: method is nil but activityRepo.ListExpired was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Now   time.Time
		Limit int
	}{Ctx: ctx, Now: now, Limit: limit}
	mock.lockListExpired.Lock()
	mock.calls.ListExpired = append(mock.calls.ListExpired, callInfo)
	mock.lockListExpired.Unlock()
	return mock.ListExpiredFunc(ctx, now, limit)
}

func (mock *activityRepoMock) ListExpiredCalls() []struct {
	Ctx   context.Context
	Now   time.Time
	Limit int
} {
	mock.lockListExpired.RLock()
	calls := mock.calls.ListExpired
	mock.lockListExpired.RUnlock()
	return calls
}

func (mock *activityRepoMock) Release(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	if mock.ReleaseFunc == nil {
		panic("activityRepoMock.ReleaseFunc: method is nil but activityRepo.Release was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, id)
}

func (mock *activityRepoMock) ReleaseCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *activityRepoMock) Resolve(ctx context.Context, id uuid.UUID, op domain.Ref, decision domain.ContentStatus, comment *string, now time.Time) (domain.Activity, error) {
	if mock.ResolveFunc == nil {
		panic("activityRepoMock.ResolveFunc: method is nil but activityRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Op       domain.Ref
		Decision domain.ContentStatus
		Comment  *string
		Now      time.Time
	}{Ctx: ctx, Id: id, Op: op, Decision: decision, Comment: comment, Now: now}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id, op, decision, comment, now)
}

func (mock *activityRepoMock) ResolveCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Op       domain.Ref
	Decision domain.ContentStatus
	Comment  *string
	Now      time.Time
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
