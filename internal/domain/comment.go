package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentLength is the longest comment body accepted.
const MaxCommentLength = 1000

// DeletedCommentBody is broadcast in place of the body when a comment is removed.
const DeletedCommentBody = "Comment deleted"

// Comment is a remark left on a task.
type Comment struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentView is a comment together with its author's username.
type CommentView struct {
	Comment
	AuthorUsername string
}
