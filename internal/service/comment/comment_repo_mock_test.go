package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error)
	UpdateFunc       func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx     context.Context
			Comment *domain.Comment
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListByTaskID []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			Comment *domain.Comment
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByTaskID sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Comment *domain.Comment
	}{
		Ctx:     ctx,
		Comment: comment,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, comment)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Comment *domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByTaskID(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error) {
	if mock.ListByTaskIDFunc == nil {
		panic("commentRepoMock.ListByTaskIDFunc: method is nil but commentRepo.ListByTaskID was just called")
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

func (mock *commentRepoMock) ListByTaskIDCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockListByTaskID.RLock()
	calls := mock.calls.ListByTaskID
	mock.lockListByTaskID.RUnlock()
	return calls
}

func (mock *commentRepoMock) Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if mock.UpdateFunc == nil {
		panic("commentRepoMock.UpdateFunc: method is nil but commentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Comment *domain.Comment
	}{
		Ctx:     ctx,
		Comment: comment,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, comment)
}

func (mock *commentRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	Comment *domain.Comment
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *commentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
