package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Mbaimbai1985/taskmanagement/internal/domain"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	AddCommentFunc    func(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error)
	ListCommentsFunc  func(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error)
	UpdateCommentFunc func(ctx context.Context, actor domain.Actor, commentID uuid.UUID, body string) (*domain.CommentView, error)
	DeleteCommentFunc func(ctx context.Context, actor domain.Actor, commentID uuid.UUID) error

	calls struct {
		AddComment []struct {
			Ctx    context.Context
			Actor  domain.Actor
			TaskID uuid.UUID
			Body   string
		}
		ListComments []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		UpdateComment []struct {
			Ctx       context.Context
			Actor     domain.Actor
			CommentID uuid.UUID
			Body      string
		}
		DeleteComment []struct {
			Ctx       context.Context
			Actor     domain.Actor
			CommentID uuid.UUID
		}
	}
	lockAddComment    sync.RWMutex
	lockListComments  sync.RWMutex
	lockUpdateComment sync.RWMutex
	lockDeleteComment sync.RWMutex
}

func (mock *commentServiceMock) AddComment(ctx context.Context, actor domain.Actor, taskID uuid.UUID, body string) (*domain.CommentView, error) {
	if mock.AddCommentFunc == nil {
		panic("commentServiceMock.AddCommentFunc: method is nil but commentService.AddComment was just called")
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

func (mock *commentServiceMock) AddCommentCalls() []struct {
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

func (mock *commentServiceMock) ListComments(ctx context.Context, taskID uuid.UUID) ([]domain.CommentView, error) {
	if mock.ListCommentsFunc == nil {
		panic("commentServiceMock.ListCommentsFunc: method is nil but commentService.ListComments was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, taskID)
}

func (mock *commentServiceMock) ListCommentsCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockListComments.RLock()
	calls := mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

func (mock *commentServiceMock) UpdateComment(ctx context.Context, actor domain.Actor, commentID uuid.UUID, body string) (*domain.CommentView, error) {
	if mock.UpdateCommentFunc == nil {
		panic("commentServiceMock.UpdateCommentFunc: method is nil but commentService.UpdateComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Actor     domain.Actor
		CommentID uuid.UUID
		Body      string
	}{
		Ctx:       ctx,
		Actor:     actor,
		CommentID: commentID,
		Body:      body,
	}
	mock.lockUpdateComment.Lock()
	mock.calls.UpdateComment = append(mock.calls.UpdateComment, callInfo)
	mock.lockUpdateComment.Unlock()
	return mock.UpdateCommentFunc(ctx, actor, commentID, body)
}

func (mock *commentServiceMock) UpdateCommentCalls() []struct {
	Ctx       context.Context
	Actor     domain.Actor
	CommentID uuid.UUID
	Body      string
} {
	mock.lockUpdateComment.RLock()
	calls := mock.calls.UpdateComment
	mock.lockUpdateComment.RUnlock()
	return calls
}

func (mock *commentServiceMock) DeleteComment(ctx context.Context, actor domain.Actor, commentID uuid.UUID) error {
	if mock.DeleteCommentFunc == nil {
		panic("commentServiceMock.DeleteCommentFunc: method is nil but commentService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Actor     domain.Actor
		CommentID uuid.UUID
	}{
		Ctx:       ctx,
		Actor:     actor,
		CommentID: commentID,
	}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, actor, commentID)
}

func (mock *commentServiceMock) DeleteCommentCalls() []struct {
	Ctx       context.Context
	Actor     domain.Actor
	CommentID uuid.UUID
} {
	mock.lockDeleteComment.RLock()
	calls := mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	ListFunc func(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *activityServiceMock) List(ctx context.Context, taskID uuid.UUID) ([]domain.ActivityView, error) {
	if mock.ListFunc == nil {
		panic("activityServiceMock.ListFunc: method is nil but activityService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{
		Ctx:    ctx,
		TaskID: taskID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, taskID)
}

func (mock *activityServiceMock) ListCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
