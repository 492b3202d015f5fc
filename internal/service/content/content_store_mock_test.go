package content

import (
	"context"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"sync"
	"time"
)

var _ contentStore = &contentStoreMock{}

type contentStoreMock struct {
	CreateFunc       func(ctx context.Context, item domain.ContentItem) (domain.ContentItem, error)
	GetFunc          func(ctx context.Context, target domain.Target) (domain.ContentItem, error)
	UpdateFunc       func(ctx context.Context, target domain.Target, params domain.ContentUpdateParams, from []domain.ContentStatus, now time.Time) (domain.ContentItem, error)
	UpdateStatusFunc func(ctx context.Context, target domain.Target, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item domain.ContentItem
		}
		Get []struct {
			Ctx    context.Context
			Target domain.Target
		}
		Update []struct {
			Ctx    context.Context
			Target domain.Target
			Params domain.ContentUpdateParams
			From   []domain.ContentStatus
			Now    time.Time
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Target domain.Target
			From   []domain.ContentStatus
			To     domain.ContentStatus
			Now    time.Time
		}
	}
	lockCreate       sync.RWMutex
	lockGet          sync.RWMutex
	lockUpdate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *contentStoreMock) Create(ctx context.Context, item domain.ContentItem) (domain.ContentItem, error) {
	if mock.CreateFunc == nil {
		panic("contentStoreMock.CreateFunc: method is nil but contentStore.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item domain.ContentItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *contentStoreMock) CreateCalls() []struct {
	Ctx  context.Context
	Item domain.ContentItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *contentStoreMock) Update(ctx context.Context, target domain.Target, params domain.ContentUpdateParams, from []domain.ContentStatus, now time.Time) (domain.ContentItem, error) {
	if mock.UpdateFunc == nil {
		panic("contentStoreMock.UpdateFunc: method is nil but contentStore.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
		Params domain.ContentUpdateParams
		From   []domain.ContentStatus
		Now    time.Time
	}{Ctx: ctx, Target: target, Params: params, From: from, Now: now}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, target, params, from, now)
}

func (mock *contentStoreMock) UpdateCalls() []struct {
	Ctx    context.Context
	Target domain.Target
	Params domain.ContentUpdateParams
	From   []domain.ContentStatus
	Now    time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
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
