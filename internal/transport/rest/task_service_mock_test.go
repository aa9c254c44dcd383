package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/task"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	CreateTaskFunc         func(ctx context.Context, actor domain.Actor, input task.CreateTaskInput) (*domain.Task, error)
	GetTaskFunc            func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateTaskFunc         func(ctx context.Context, actor domain.Actor, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTaskFunc         func(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	ListMineFunc           func(ctx context.Context, actor domain.Actor) ([]domain.Task, error)
	ListAllFunc            func(ctx context.Context) ([]domain.Task, error)
	FilterFunc             func(ctx context.Context, actor domain.Actor, input task.FilterInput) ([]domain.Task, error)
	ListMineByPriorityFunc func(ctx context.Context, actor domain.Actor, priority string) ([]domain.Task, error)

	calls struct {
		CreateTask []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input task.CreateTaskInput
		}
		GetTask []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateTask []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input task.UpdateTaskInput
		}
		DeleteTask []struct {
			Ctx   context.Context
			Actor domain.Actor
			Id    uuid.UUID
		}
		ListMine []struct {
			Ctx   context.Context
			Actor domain.Actor
		}
		ListAll []struct {
			Ctx context.Context
		}
		Filter []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input task.FilterInput
		}
		ListMineByPriority []struct {
			Ctx      context.Context
			Actor    domain.Actor
			Priority string
		}
	}
	lockCreateTask         sync.RWMutex
	lockGetTask            sync.RWMutex
	lockUpdateTask         sync.RWMutex
	lockDeleteTask         sync.RWMutex
	lockListMine           sync.RWMutex
	lockListAll            sync.RWMutex
	lockFilter             sync.RWMutex
	lockListMineByPriority sync.RWMutex
}

func (mock *taskServiceMock) CreateTask(ctx context.Context, actor domain.Actor, input task.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskServiceMock.CreateTaskFunc: method is nil but taskService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input task.CreateTaskInput
	}{
		Ctx:   ctx,
		Actor: actor,
		Input: input,
	}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, actor, input)
}

func (mock *taskServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input task.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetTaskFunc == nil {
		panic("taskServiceMock.GetTaskFunc: method is nil but taskService.GetTask was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetTask.Lock()
	mock.calls.GetTask = append(mock.calls.GetTask, callInfo)
	mock.lockGetTask.Unlock()
	return mock.GetTaskFunc(ctx, id)
}

func (mock *taskServiceMock) GetTaskCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetTask.RLock()
	calls := mock.calls.GetTask
	mock.lockGetTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdateTask(ctx context.Context, actor domain.Actor, input task.UpdateTaskInput) (*domain.Task, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskServiceMock.UpdateTaskFunc: method is nil but taskService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input task.UpdateTaskInput
	}{
		Ctx:   ctx,
		Actor: actor,
		Input: input,
	}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, actor, input)
}

func (mock *taskServiceMock) UpdateTaskCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input task.UpdateTaskInput
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) DeleteTask(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("taskServiceMock.DeleteTaskFunc: method is nil but taskService.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Id    uuid.UUID
	}{
		Ctx:   ctx,
		Actor: actor,
		Id:    id,
	}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, actor, id)
}

func (mock *taskServiceMock) DeleteTaskCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Id    uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Task, error) {
	if mock.ListMineFunc == nil {
		panic("taskServiceMock.ListMineFunc: method is nil but taskService.ListMine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
	}{
		Ctx:   ctx,
		Actor: actor,
	}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, actor)
}

func (mock *taskServiceMock) ListMineCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListAll(ctx context.Context) ([]domain.Task, error) {
	if mock.ListAllFunc == nil {
		panic("taskServiceMock.ListAllFunc: method is nil but taskService.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *taskServiceMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *taskServiceMock) Filter(ctx context.Context, actor domain.Actor, input task.FilterInput) ([]domain.Task, error) {
	if mock.FilterFunc == nil {
		panic("taskServiceMock.FilterFunc: method is nil but taskService.Filter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input task.FilterInput
	}{
		Ctx:   ctx,
		Actor: actor,
		Input: input,
	}
	mock.lockFilter.Lock()
	mock.calls.Filter = append(mock.calls.Filter, callInfo)
	mock.lockFilter.Unlock()
	return mock.FilterFunc(ctx, actor, input)
}

func (mock *taskServiceMock) FilterCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input task.FilterInput
} {
	mock.lockFilter.RLock()
	calls := mock.calls.Filter
	mock.lockFilter.RUnlock()
	return calls
}

func (mock *taskServiceMock) ListMineByPriority(ctx context.Context, actor domain.Actor, priority string) ([]domain.Task, error) {
	if mock.ListMineByPriorityFunc == nil {
		panic("taskServiceMock.ListMineByPriorityFunc: method is nil but taskService.ListMineByPriority was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Actor    domain.Actor
		Priority string
	}{
		Ctx:      ctx,
		Actor:    actor,
		Priority: priority,
	}
	mock.lockListMineByPriority.Lock()
	mock.calls.ListMineByPriority = append(mock.calls.ListMineByPriority, callInfo)
	mock.lockListMineByPriority.Unlock()
	return mock.ListMineByPriorityFunc(ctx, actor, priority)
}

func (mock *taskServiceMock) ListMineByPriorityCalls() []struct {
	Ctx      context.Context
	Actor    domain.Actor
	Priority string
} {
	mock.lockListMineByPriority.RLock()
	calls := mock.calls.ListMineByPriority
	mock.lockListMineByPriority.RUnlock()
	return calls
}
