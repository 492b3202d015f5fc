package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/internal/service/workflow"
	"sync"
)

var _ workflowService = &workflowServiceMock{}

type workflowServiceMock struct {
	ApplyOperatorActionFunc func(ctx context.Context, input workflow.OperatorActionInput) (workflow.OperatorActionResult, error)
	GetProcessFunc          func(ctx context.Context, id uuid.UUID) (domain.ProcessWithActivities, error)
	ListProcessesFunc       func(ctx context.Context, input workflow.ListProcessesInput) ([]domain.Process, int, error)

	calls struct {
		ApplyOperatorAction []struct {
			Ctx   context.Context
			Input workflow.OperatorActionInput
		}
		GetProcess []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListProcesses []struct {
			Ctx   context.Context
			Input workflow.ListProcessesInput
		}
	}
	lockApplyOperatorAction sync.RWMutex
	lockGetProcess          sync.RWMutex
	lockListProcesses       sync.RWMutex
}

func (mock *workflowServiceMock) ApplyOperatorAction(ctx context.Context, input workflow.OperatorActionInput) (workflow.OperatorActionResult, error) {
	if mock.ApplyOperatorActionFunc == nil {
		panic("workflowServiceMock.ApplyOperatorActionFunc: method is nil but workflowService.ApplyOperatorAction was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.OperatorActionInput
	}{Ctx: ctx, Input: input}
	mock.lockApplyOperatorAction.Lock()
	mock.calls.ApplyOperatorAction = append(mock.calls.ApplyOperatorAction, callInfo)
	mock.lockApplyOperatorAction.Unlock()
	return mock.ApplyOperatorActionFunc(ctx, input)
}

func (mock *workflowServiceMock) ApplyOperatorActionCalls() []struct {
	Ctx   context.Context
	Input workflow.OperatorActionInput
} {
	mock.lockApplyOperatorAction.RLock()
	calls := mock.calls.ApplyOperatorAction
	mock.lockApplyOperatorAction.RUnlock()
	return calls
}

func (mock *workflowServiceMock) GetProcess(ctx context.Context, id uuid.UUID) (domain.ProcessWithActivities, error) {
	if mock.GetProcessFunc == nil {
		panic("workflowServiceMock.GetProcessFunc: method is nil but workflowService.GetProcess was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetProcess.Lock()
	mock.calls.GetProcess = append(mock.calls.GetProcess, callInfo)
	mock.lockGetProcess.Unlock()
	return mock.GetProcessFunc(ctx, id)
}

func (mock *workflowServiceMock) GetProcessCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetProcess.RLock()
	calls := mock.calls.GetProcess
	mock.lockGetProcess.RUnlock()
	return calls
}

func (mock *workflowServiceMock) ListProcesses(ctx context.Context, input workflow.ListProcessesInput) ([]domain.Process, int, error) {
	if mock.ListProcessesFunc == nil {
		panic("workflowServiceMock.ListProcessesFunc: method is nil but workflowService.ListProcesses was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.ListProcessesInput
	}{Ctx: ctx, Input: input}
	mock.lockListProcesses.Lock()
	mock.calls.ListProcesses = append(mock.calls.ListProcesses, callInfo)
	mock.lockListProcesses.Unlock()
	return mock.ListProcessesFunc(ctx, input)
}

func (mock *workflowServiceMock) ListProcessesCalls() []struct {
	Ctx   context.Context
	Input workflow.ListProcessesInput
} {
	mock.lockListProcesses.RLock()
	calls := mock.calls.ListProcesses
	mock.lockListProcesses.RUnlock()
	return calls
}
