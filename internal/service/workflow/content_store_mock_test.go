package workflow

import (
	"context"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"sync"
	"time"
)

var _ contentStore = &contentStoreMock{}

type contentStoreMock struct {
	GetFunc          func(ctx context.Context, target domain.Target) (domain.ContentItem, error)
	UpdateStatusFunc func(ctx context.Context, target domain.Target, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			Target domain.Target
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Target domain.Target
			From   []domain.ContentStatus
			To     domain.ContentStatus
			Now    time.Time
		}
	}
	lockGet          sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *contentStoreMock) Get(ctx context.Context, target domain.Target) (domain.ContentItem, error) {
	if mock.GetFunc == nil {
		panic("contentStoreMock.GetFunc: method is nil but contentStore.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
	}{Ctx: ctx, Target: target}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, target)
}

func (mock *contentStoreMock) GetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *contentStoreMock) UpdateStatus(ctx context.Context, target domain.Target, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error) {
	if mock.UpdateStatusFunc == nil {
		panic("contentStoreMock.UpdateStatusFunc: method is nil but contentStore.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
		From   []domain.ContentStatus
		To     domain.ContentStatus
		Now    time.Time
	}{Ctx: ctx, Target: target, From: from, To: to, Now: now}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, target, from, to, now)
}

func (mock *contentStoreMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Target domain.Target
	From   []domain.ContentStatus
	To     domain.ContentStatus
	Now    time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
