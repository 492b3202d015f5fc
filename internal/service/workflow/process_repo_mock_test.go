package workflow

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"sync"
	"time"
)

var _ processRepo = &processRepoMock{}

type processRepoMock struct {
	AppendActivityFunc func(ctx context.Context, id uuid.UUID, activityID uuid.UUID) (domain.Process, error)
	CancelFunc         func(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error)
	FinalizeFunc       func(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error)
	FindLatestFunc     func(ctx context.Context, creator domain.Ref, target domain.Target, typ domain.ProcessType) (*domain.Process, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (domain.Process, error)
	ListFunc           func(ctx context.Context, filter domain.ProcessFilter) ([]domain.Process, int, error)
	ListExpiredFunc    func(ctx context.Context, now time.Time, limit int) ([]domain.Process, error)
	OpenOrAppendFunc   func(ctx context.Context, p domain.Process) (domain.Process, bool, error)

	calls struct {
		AppendActivity []struct {
			Ctx        context.Context
			Id         uuid.UUID
			ActivityID uuid.UUID
		}
		Cancel []struct {
			Ctx context.Context
			Id  uuid.UUID
			Now time.Time
		}
		Finalize []struct {
			Ctx context.Context
			Id  uuid.UUID
			Now time.Time
		}
		FindLatest []struct {
			Ctx     context.Context
			Creator domain.Ref
			Target  domain.Target
			Typ     domain.ProcessType
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ProcessFilter
		}
		ListExpired []struct {
			Ctx   context.Context
			Now   time.Time
			Limit int
		}
		OpenOrAppend []struct {
			Ctx context.Context
			P   domain.Process
		}
	}
	lockAppendActivity sync.RWMutex
	lockCancel         sync.RWMutex
	lockFinalize       sync.RWMutex
	lockFindLatest     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockListExpired    sync.RWMutex
	lockOpenOrAppend   sync.RWMutex
}

func (mock *processRepoMock) AppendActivity(ctx context.Context, id uuid.UUID, activityID uuid.UUID) (domain.Process, error) {
	if mock.AppendActivityFunc == nil {
		panic("processRepoMock.AppendActivityFunc: method is nil but processRepo.AppendActivity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         uuid.UUID
		ActivityID uuid.UUID
	}{Ctx: ctx, Id: id, ActivityID: activityID}
	mock.lockAppendActivity.Lock()
	mock.calls.AppendActivity = append(mock.calls.AppendActivity, callInfo)
	mock.lockAppendActivity.Unlock()
	return mock.AppendActivityFunc(ctx, id, activityID)
}

func (mock *processRepoMock) AppendActivityCalls() []struct {
	Ctx        context.Context
	Id         uuid.UUID
	ActivityID uuid.UUID
} {
	mock.lockAppendActivity.RLock()
	calls := mock.calls.AppendActivity
	mock.lockAppendActivity.RUnlock()
	return calls
}

func (mock *processRepoMock) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error) {
	if mock.CancelFunc == nil {
		panic("processRepoMock.CancelFunc: method is nil but processRepo.Cancel was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Now time.Time
	}{Ctx: ctx, Id: id, Now: now}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, id, now)
}

func (mock *processRepoMock) CancelCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Now time.Time
} {
	mock.lockCancel.RLock()
	calls := mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

func (mock *processRepoMock) Finalize(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error) {
	if mock.FinalizeFunc == nil {
		panic("processRepoMock.FinalizeFunc: method is nil but processRepo.Finalize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Now time.Time
	}{Ctx: ctx, Id: id, Now: now}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, id, now)
}

func (mock *processRepoMock) FinalizeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Now time.Time
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *processRepoMock) FindLatest(ctx context.Context, creator domain.Ref, target domain.Target, typ domain.ProcessType) (*domain.Process, error) {
	if mock.FindLatestFunc == nil {
		panic("processRepoMock.FindLatestFunc: method is nil but processRepo.FindLatest was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Creator domain.Ref
		Target  domain.Target
		Typ     domain.ProcessType
	}{Ctx: ctx, Creator: creator, Target: target, Typ: typ}
	mock.lockFindLatest.Lock()
	mock.calls.FindLatest = append(mock.calls.FindLatest, callInfo)
	mock.lockFindLatest.Unlock()
	return mock.FindLatestFunc(ctx, creator, target, typ)
}

func (mock *processRepoMock) FindLatestCalls() []struct {
	Ctx     context.Context
	Creator domain.Ref
	Target  domain.Target
	Typ     domain.ProcessType
} {
	mock.lockFindLatest.RLock()
	calls := mock.calls.FindLatest
	mock.lockFindLatest.RUnlock()
	return calls
}

func (mock *processRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Process, error) {
	if mock.GetByIDFunc == nil {
		panic("processRepoMock.GetByIDFunc: method is nil but processRepo.GetByID was just called")
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

func (mock *processRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *processRepoMock) List(ctx context.Context, filter domain.ProcessFilter) ([]domain.Process, int, error) {
	if mock.ListFunc == nil {
		panic("processRepoMock.ListFunc: method is nil but processRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProcessFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *processRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ProcessFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *processRepoMock) ListExpired(ctx context.Context, now time.Time, limit int) ([]domain.Process, error) {
	if mock.ListExpiredFunc == nil {
		panic("processRepoMock.ListExpiredFunc: method is nil but processRepo.ListExpired was just called")
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

func (mock *processRepoMock) ListExpiredCalls() []struct {
	Ctx   context.Context
	Now   time.Time
	Limit int
} {
	mock.lockListExpired.RLock()
	calls := mock.calls.ListExpired
	mock.lockListExpired.RUnlock()
	return calls
}

func (mock *processRepoMock) OpenOrAppend(ctx context.Context, p domain.Process) (domain.Process, bool, error) {
	if mock.OpenOrAppendFunc == nil {
		panic("processRepoMock.OpenOrAppendFunc: method is nil but processRepo.OpenOrAppend was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Process
	}{Ctx: ctx, P: p}
	mock.lockOpenOrAppend.Lock()
	mock.calls.OpenOrAppend = append(mock.calls.OpenOrAppend, callInfo)
	mock.lockOpenOrAppend.Unlock()
	return mock.OpenOrAppendFunc(ctx, p)
}

func (mock *processRepoMock) OpenOrAppendCalls() []struct {
	Ctx context.Context
	P   domain.Process
} {
	mock.lockOpenOrAppend.RLock()
	calls := mock.calls.OpenOrAppend
	mock.lockOpenOrAppend.RUnlock()
	return calls
}
