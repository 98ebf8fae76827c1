package service_test

import (
	"context"
	"testing"

	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*service.CommentService, *fakeActivityRepo, uuid.UUID) {
	t.Helper()
	tasks := newFakeTaskRepo()
	comments := newFakeCommentRepo()
	activity := newFakeActivityRepo()

	task := &model.Task{ID: uuid.New(), Title: "Parent", ListID: uuid.New(), ProjectID: uuid.New(), Status: model.StatusToDo, Priority: model.PriorityNormal, Order: 1}
	require.NoError(t, tasks.Create(context.Background(), task))

	return service.NewCommentService(comments, tasks, activity), activity, task.ID
}

func TestCommentService_Create(t *testing.T) {
	svc, activity, taskID := newCommentFixture(t)
	author := uuid.New()

	comment, err := svc.Create(context.Background(), taskID, "Looks good", author)
	require.NoError(t, err)
	assert.Equal(t, "Looks good", comment.Content)
	assert.Equal(t, author, comment.AuthorID)
	assert.False(t, comment.IsEdited)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, model.ActivityCommentAdded, activity.entries[0].Type)
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	svc, _, taskID := newCommentFixture(t)

	_, err := svc.Create(context.Background(), taskID, "   ", uuid.New())
	assert.True(t, service.IsValidation(err))
	assert.EqualError(t, err, "Comment cannot be empty")
}

func TestCommentService_Update_AuthorOnly(t *testing.T) {
	svc, _, taskID := newCommentFixture(t)
	author := uuid.New()
	stranger := uuid.New()

	comment, err := svc.Create(context.Background(), taskID, "Original", author)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), comment.ID, "Hijacked", stranger)
	assert.True(t, service.IsForbidden(err))

	updated, err := svc.Update(context.Background(), comment.ID, "Edited", author)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Content)
	assert.True(t, updated.IsEdited)
}

func TestCommentService_Delete_AuthorOnly(t *testing.T) {
	svc, _, taskID := newCommentFixture(t)
	author := uuid.New()

	comment, err := svc.Create(context.Background(), taskID, "Original", author)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), comment.ID, uuid.New())
	assert.True(t, service.IsForbidden(err))

	require.NoError(t, svc.Delete(context.Background(), comment.ID, author))

	comments, err := svc.ListForTask(context.Background(), taskID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
