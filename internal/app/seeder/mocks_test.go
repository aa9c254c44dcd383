package seeder

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
	"github.com/Mbaimbai1985/taskmanagement/internal/service/task"
)

var _ userStore = &userStoreMock{}

type userStoreMock struct {
	CountFunc         func(ctx context.Context) (int, error)
	CreateFunc        func(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx          context.Context
			U            *domain.User
			PasswordHash string
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockCount         sync.RWMutex
	lockCreate        sync.RWMutex
	lockGetByUsername sync.RWMutex
}

func (mock *userStoreMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userStoreMock.CountFunc: method is nil but userStore.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userStoreMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *userStoreMock) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userStoreMock.CreateFunc: method is nil but userStore.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		U            *domain.User
		PasswordHash string
	}{
		Ctx:          ctx,
		U:            u,
		PasswordHash: passwordHash,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u, passwordHash)
}

func (mock *userStoreMock) CreateCalls() []struct {
	Ctx          context.Context
	U            *domain.User
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userStoreMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userStoreMock.GetByUsernameFunc: method is nil but userStore.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userStoreMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

var _ taskCreator = &taskCreatorMock{}

type taskCreatorMock struct {
	CreateTaskFunc func(ctx context.Context, actor domain.Actor, input task.CreateTaskInput) (*domain.Task, error)

	calls struct {
		CreateTask []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input task.CreateTaskInput
		}
	}
	lockCreateTask sync.RWMutex
}

func (mock *taskCreatorMock) CreateTask(ctx context.Context, actor domain.Actor, input task.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskCreatorMock.CreateTaskFunc: method is nil but taskCreator.CreateTask was just called")
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

func (mock *taskCreatorMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Actor domain.Actor
	Input task.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

var _ commentAdder = &commentAdderMock{}

type commentAdderMock struct {
	AddCommentFunc func(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error)

	calls struct {
		AddComment []struct {
			Ctx    context.Context
			Actor  domain.Actor
			TaskID uuid.UUID
			Body   string
		}
	}
	lockAddComment sync.RWMutex
}

func (mock *commentAdderMock) AddComment(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error) {
	if mock.AddCommentFunc == nil {
		panic("commentAdderMock.AddCommentFunc: method is nil but commentAdder.AddComment was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Actor  domain.Actor
		TaskID uuid.UUID
		Body   string
	}{
		Ctx:    ctx,
		Actor:  actor,
		TaskID: taskID,
		Body:   body,
	}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, actor, taskID, body)
}

func (mock *commentAdderMock) AddCommentCalls() []struct {
	Ctx    context.Context
	Actor  domain.Actor
	TaskID uuid.UUID
	Body   string
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}
