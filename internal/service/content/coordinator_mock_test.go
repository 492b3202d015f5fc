package content

import (
	"context"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"sync"
)

var _ coordinator = &coordinatorMock{}

type coordinatorMock struct {
	CancelPendingFunc    func(ctx context.Context, creator domain.Ref, target domain.Target) (*domain.Process, error)
	MaybeOpenProcessFunc func(ctx context.Context, item domain.ContentItem, submitter domain.Actor, action domain.ActivityAction) (*domain.Process, error)

	calls struct {
		CancelPending []struct {
			Ctx     context.Context
			Creator domain.Ref
			Target  domain.Target
		}
		MaybeOpenProcess []struct {
			Ctx       context.Context
			Item      domain.ContentItem
			Submitter domain.Actor
			Action    domain.ActivityAction
		}
	}
	lockCancelPending    sync.RWMutex
	lockMaybeOpenProcess sync.RWMutex
}

func (mock *coordinatorMock) CancelPending(ctx context.Context, creator domain.Ref, target domain.Target) (*domain.Process, error) {
	if mock.CancelPendingFunc == nil {
		panic("coordinatorMock.CancelPendingFunc: method is nil but coordinator.CancelPending was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Creator domain.Ref
		Target  domain.Target
	}{Ctx: ctx, Creator: creator, Target: target}
	mock.lockCancelPending.Lock()
	mock.calls.CancelPending = append(mock.calls.CancelPending, callInfo)
	mock.lockCancelPending.Unlock()
	return mock.CancelPendingFunc(ctx, creator, target)
}

func (mock *coordinatorMock) CancelPendingCalls() []struct {
	Ctx     context.Context
	Creator domain.Ref
	Target  domain.Target
} {
	mock.lockCancelPending.RLock()
	calls := mock.calls.CancelPending
	mock.lockCancelPending.RUnlock()
	return calls
}

func (mock *coordinatorMock) MaybeOpenProcess(ctx context.Context, item domain.ContentItem, submitter domain.Actor, action domain.ActivityAction) (*domain.Process, error) {
	if mock.MaybeOpenProcessFunc == nil {
		panic("coordinatorMock.MaybeOpenProcessFunc: method is nil but coordinator.MaybeOpenProcess was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Item      domain.ContentItem
		Submitter domain.Actor
		Action    domain.ActivityAction
	}{Ctx: ctx, Item: item, Submitter: submitter, Action: action}
	mock.lockMaybeOpenProcess.Lock()
	mock.calls.MaybeOpenProcess = append(mock.calls.MaybeOpenProcess, callInfo)
	mock.lockMaybeOpenProcess.Unlock()
	return mock.MaybeOpenProcessFunc(ctx, item, submitter, action)
}

func (mock *coordinatorMock) MaybeOpenProcessCalls() []struct {
	Ctx       context.Context
	Item      domain.ContentItem
	Submitter domain.Actor
	Action    domain.ActivityAction
} {
	mock.lockMaybeOpenProcess.RLock()
	calls := mock.calls.MaybeOpenProcess
	mock.lockMaybeOpenProcess.RUnlock()
	return calls
}
