package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc       func(ctx context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error)
	ListByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Record *domain.ActivityRecord
		}
		ListByTaskID []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockListByTaskID sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, record *domain.ActivityRecord) (*domain.ActivityRecord, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record *domain.ActivityRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, record)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Record *domain.ActivityRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error) {
	if mock.ListByTaskIDFunc == nil {
		panic("activityRepoMock.ListByTaskIDFunc: method is nil but activityRepo.ListByTaskID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockListByTaskID.Lock()
	mock.calls.ListByTaskID = append(mock.calls.ListByTaskID, callInfo)
	mock.lockListByTaskID.Unlock()
	return mock.ListByTaskIDFunc(ctx, taskID)
}

func (mock *activityRepoMock) ListByTaskIDCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockListByTaskID.RLock()
	calls := mock.calls.ListByTaskID
	mock.lockListByTaskID.RUnlock()
	return calls
}
