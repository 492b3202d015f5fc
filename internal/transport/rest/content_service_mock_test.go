package rest

import (
	"context"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/internal/service/content"
	"sync"
)

var _ contentService = &contentServiceMock{}

type contentServiceMock struct {
	CreateDraftFunc func(ctx context.Context, input content.CreateDraftInput) (domain.ContentItem, error)
	GetFunc         func(ctx context.Context, target domain.Target) (domain.ContentItem, error)
	RetractFunc     func(ctx context.Context, target domain.Target) (content.RetractResult, error)
	SubmitFunc      func(ctx context.Context, target domain.Target) (content.SubmitResult, error)
	UpdateDraftFunc func(ctx context.Context, input content.UpdateDraftInput) (domain.ContentItem, error)

	calls struct {
		CreateDraft []struct {
			Ctx   context.Context
			Input content.CreateDraftInput
		}
		Get []struct {
			Ctx    context.Context
			Target domain.Target
		}
		Retract []struct {
			Ctx    context.Context
			Target domain.Target
		}
		Submit []struct {
			Ctx    context.Context
			Target domain.Target
		}
		UpdateDraft []struct {
			Ctx   context.Context
			Input content.UpdateDraftInput
		}
	}
	lockCreateDraft sync.RWMutex
	lockGet         sync.RWMutex
	lockRetract     sync.RWMutex
	lockSubmit      sync.RWMutex
	lockUpdateDraft sync.RWMutex
}

func (mock *contentServiceMock) CreateDraft(ctx context.Context, input content.CreateDraftInput) (domain.ContentItem, error) {
	if mock.CreateDraftFunc == nil {
		panic("contentServiceMock.CreateDraftFunc: method is nil but contentService.CreateDraft was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input content.CreateDraftInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDraft.Lock()
	mock.calls.CreateDraft = append(mock.calls.CreateDraft, callInfo)
	mock.lockCreateDraft.Unlock()
	return mock.CreateDraftFunc(ctx, input)
}

func (mock *contentServiceMock) CreateDraftCalls() []struct {
	Ctx   context.Context
	Input content.CreateDraftInput
} {
	mock.lockCreateDraft.RLock()
	calls := mock.calls.CreateDraft
	mock.lockCreateDraft.RUnlock()
	return calls
}

func (mock *contentServiceMock) Get(ctx context.Context, target domain.Target) (domain.ContentItem, error) {
	if mock.GetFunc == nil {
		panic("contentServiceMock.GetFunc: method is nil but contentService.Get was just called")
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

func (mock *contentServiceMock) GetCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *contentServiceMock) Retract(ctx context.Context, target domain.Target) (content.RetractResult, error) {
	if mock.RetractFunc == nil {
		panic("contentServiceMock.RetractFunc: method is nil but contentService.Retract was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
	}{Ctx: ctx, Target: target}
	mock.lockRetract.Lock()
	mock.calls.Retract = append(mock.calls.Retract, callInfo)
	mock.lockRetract.Unlock()
	return mock.RetractFunc(ctx, target)
}

func (mock *contentServiceMock) RetractCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockRetract.RLock()
	calls := mock.calls.Retract
	mock.lockRetract.RUnlock()
	return calls
}

func (mock *contentServiceMock) Submit(ctx context.Context, target domain.Target) (content.SubmitResult, error) {
	if mock.SubmitFunc == nil {
		panic("contentServiceMock.SubmitFunc: method is nil but contentService.Submit was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Target
	}{Ctx: ctx, Target: target}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, target)
}

func (mock *contentServiceMock) SubmitCalls() []struct {
	Ctx    context.Context
	Target domain.Target
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *contentServiceMock) UpdateDraft(ctx context.Context, input content.UpdateDraftInput) (domain.ContentItem, error) {
	if mock.UpdateDraftFunc == nil {
		panic("contentServiceMock.UpdateDraftFunc: method is nil but contentService.UpdateDraft was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input content.UpdateDraftInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateDraft.Lock()
	mock.calls.UpdateDraft = append(mock.calls.UpdateDraft, callInfo)
	mock.lockUpdateDraft.Unlock()
	return mock.UpdateDraftFunc(ctx, input)
}

func (mock *contentServiceMock) UpdateDraftCalls() []struct {
	Ctx   context.Context
	Input content.UpdateDraftInput
} {
	mock.lockUpdateDraft.RLock()
	calls := mock.calls.UpdateDraft
	mock.lockUpdateDraft.RUnlock()
	return calls
}
