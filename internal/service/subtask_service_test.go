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

func newSubtaskFixture(t *testing.T) (*service.SubtaskService, *fakeSubtaskRepo, uuid.UUID) {
	t.Helper()
	tasks := newFakeTaskRepo()
	subtasks := newFakeSubtaskRepo()

	task := &model.Task{ID: uuid.New(), Title: "Parent", ListID: uuid.New(), ProjectID: uuid.New(), Status: model.StatusToDo, Priority: model.PriorityNormal, Order: 1}
	require.NoError(t, tasks.Create(context.Background(), task))

	return service.NewSubtaskService(subtasks, tasks), subtasks, task.ID
}

func TestSubtaskService_Create_OrderAppends(t *testing.T) {
	svc, _, taskID := newSubtaskFixture(t)

	first, err := svc.Create(context.Background(), taskID, "Step one")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), taskID, "Step two")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
	assert.False(t, first.IsCompleted)
}

func TestSubtaskService_Create_EmptyTitle(t *testing.T) {
	svc, _, taskID := newSubtaskFixture(t)

	_, err := svc.Create(context.Background(), taskID, "")
	assert.True(t, service.IsValidation(err))
}

func TestSubtaskService_Create_UnknownTask(t *testing.T) {
	svc, _, _ := newSubtaskFixture(t)

	_, err := svc.Create(context.Background(), uuid.New(), "Step")
	assert.Error(t, err)
}

func TestSubtaskService_Toggle(t *testing.T) {
	svc, repo, taskID := newSubtaskFixture(t)

	created, err := svc.Create(context.Background(), taskID, "Step")
	require.NoError(t, err)

	toggled, err := svc.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.CompletedAt)

	toggled, err = svc.Toggle(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)

	stored, err = repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CompletedAt)
}

func TestSubtaskService_Delete(t *testing.T) {
	svc, _, taskID := newSubtaskFixture(t)

	created, err := svc.Create(context.Background(), taskID, "Step")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Error(t, svc.Delete(context.Background(), created.ID))
}
