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

func newTaskListFixture(t *testing.T) (*service.TaskListService, *fakeActivityRepo, uuid.UUID) {
	t.Helper()
	projects := newFakeProjectRepo()
	lists := newFakeListRepo()
	activity := newFakeActivityRepo()

	project := &model.Project{ID: uuid.New(), Name: "Website", WorkspaceID: uuid.New(), CreatedByID: uuid.New()}
	require.NoError(t, projects.Create(context.Background(), project))

	return service.NewTaskListService(lists, projects, activity), activity, project.ID
}

func TestTaskListService_Create_OrderAppends(t *testing.T) {
	svc, activity, projectID := newTaskListFixture(t)
	actor := uuid.New()

	first, err := svc.Create(context.Background(), service.CreateTaskListInput{Name: "To Do", ProjectID: projectID}, actor)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), service.CreateTaskListInput{Name: "Doing", ProjectID: projectID}, actor)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
	assert.Len(t, activity.entries, 2)
}

func TestTaskListService_Create_UnknownProject(t *testing.T) {
	svc, _, _ := newTaskListFixture(t)

	_, err := svc.Create(context.Background(), service.CreateTaskListInput{Name: "To Do", ProjectID: uuid.New()}, uuid.New())
	assert.Error(t, err)
}

func TestTaskListService_Delete_SoftDeletes(t *testing.T) {
	svc, _, projectID := newTaskListFixture(t)
	actor := uuid.New()

	list, err := svc.Create(context.Background(), service.CreateTaskListInput{Name: "To Do", ProjectID: projectID}, actor)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), list.ID, actor))

	_, err = svc.Get(context.Background(), list.ID)
	assert.Error(t, err)

	// Max order only considers active lists.
	next, err := svc.Create(context.Background(), service.CreateTaskListInput{Name: "Doing", ProjectID: projectID}, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Order)
}
