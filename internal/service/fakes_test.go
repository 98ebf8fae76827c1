package service_test

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces consumed by the services.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) add(email, first, last string) *model.User {
	u := &model.User{ID: uuid.New(), Email: email, FirstName: first, LastName: last, IsActive: true}
	f.users[u.ID] = u
	return u
}

type fakeWorkspaceRepo struct {
	items map[uuid.UUID]*model.Workspace
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{items: make(map[uuid.UUID]*model.Workspace)}
}

func (f *fakeWorkspaceRepo) Create(_ context.Context, workspace *model.Workspace) error {
	cp := *workspace
	f.items[workspace.ID] = &cp
	return nil
}

func (f *fakeWorkspaceRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Workspace, error) {
	w, ok := f.items[id]
	if !ok || !w.IsActive {
		return nil, repository.ErrWorkspaceNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWorkspaceRepo) GetForUser(_ context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	var out []model.Workspace
	for _, w := range f.items {
		if w.IsActive && w.OwnerID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeWorkspaceRepo) Update(_ context.Context, workspace *model.Workspace) error {
	if _, ok := f.items[workspace.ID]; !ok {
		return repository.ErrWorkspaceNotFound
	}
	cp := *workspace
	f.items[workspace.ID] = &cp
	return nil
}

func (f *fakeWorkspaceRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	w, ok := f.items[id]
	if !ok || !w.IsActive {
		return repository.ErrWorkspaceNotFound
	}
	w.IsActive = false
	return nil
}

type fakeMemberRepo struct {
	items map[uuid.UUID]*model.WorkspaceUser
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{items: make(map[uuid.UUID]*model.WorkspaceUser)}
}

func (f *fakeMemberRepo) Add(_ context.Context, member *model.WorkspaceUser) error {
	cp := *member
	f.items[member.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) GetByID(_ context.Context, id uuid.UUID) (*model.WorkspaceUser, error) {
	m, ok := f.items[id]
	if !ok || !m.IsActive {
		return nil, repository.ErrWorkspaceUserNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMemberRepo) GetByWorkspaceAndUser(_ context.Context, workspaceID, userID uuid.UUID) (*model.WorkspaceUser, error) {
	for _, m := range f.items {
		if m.WorkspaceID == workspaceID && m.UserID == userID && m.IsActive {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) GetMembers(_ context.Context, workspaceID uuid.UUID) ([]model.WorkspaceUser, error) {
	var out []model.WorkspaceUser
	for _, m := range f.items {
		if m.WorkspaceID == workspaceID && m.IsActive {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (f *fakeMemberRepo) Update(_ context.Context, member *model.WorkspaceUser) error {
	if _, ok := f.items[member.ID]; !ok {
		return repository.ErrWorkspaceUserNotFound
	}
	cp := *member
	f.items[member.ID] = &cp
	return nil
}

func (f *fakeMemberRepo) Remove(_ context.Context, id uuid.UUID) error {
	m, ok := f.items[id]
	if !ok || !m.IsActive {
		return repository.ErrWorkspaceUserNotFound
	}
	m.IsActive = false
	return nil
}

type fakeProjectRepo struct {
	items map[uuid.UUID]*model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: make(map[uuid.UUID]*model.Project)}
}

func (f *fakeProjectRepo) Create(_ context.Context, project *model.Project) error {
	cp := *project
	f.items[project.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := f.items[id]
	if !ok || p.IsArchived {
		return nil, repository.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectRepo) GetByWorkspaceID(_ context.Context, workspaceID uuid.UUID) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.items {
		if p.WorkspaceID == workspaceID && !p.IsArchived {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, project *model.Project) error {
	if _, ok := f.items[project.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	cp := *project
	f.items[project.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) Archive(_ context.Context, id uuid.UUID) error {
	p, ok := f.items[id]
	if !ok || p.IsArchived {
		return repository.ErrProjectNotFound
	}
	p.IsArchived = true
	return nil
}

type fakeListRepo struct {
	items map[uuid.UUID]*model.TaskList
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{items: make(map[uuid.UUID]*model.TaskList)}
}

func (f *fakeListRepo) Create(_ context.Context, list *model.TaskList) error {
	cp := *list
	f.items[list.ID] = &cp
	return nil
}

func (f *fakeListRepo) GetByID(_ context.Context, id uuid.UUID) (*model.TaskList, error) {
	l, ok := f.items[id]
	if !ok || !l.IsActive {
		return nil, repository.ErrTaskListNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListRepo) GetByProjectID(_ context.Context, projectID uuid.UUID) ([]model.TaskList, error) {
	var out []model.TaskList
	for _, l := range f.items {
		if l.ProjectID == projectID && l.IsActive {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeListRepo) GetMaxOrder(_ context.Context, projectID uuid.UUID) (int, error) {
	max := 0
	for _, l := range f.items {
		if l.ProjectID == projectID && l.IsActive && l.Order > max {
			max = l.Order
		}
	}
	return max, nil
}

func (f *fakeListRepo) Update(_ context.Context, list *model.TaskList) error {
	if _, ok := f.items[list.ID]; !ok {
		return repository.ErrTaskListNotFound
	}
	cp := *list
	f.items[list.ID] = &cp
	return nil
}

func (f *fakeListRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	l, ok := f.items[id]
	if !ok || !l.IsActive {
		return repository.ErrTaskListNotFound
	}
	l.IsActive = false
	return nil
}

type fakeTaskRepo struct {
	items     map[uuid.UUID]*model.Task
	deleteErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{items: make(map[uuid.UUID]*model.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *model.Task) error {
	cp := *task
	f.items[task.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Task, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) GetDetail(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeTaskRepo) GetByListID(_ context.Context, listID uuid.UUID) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.items {
		if t.ListID == listID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeTaskRepo) GetByProjectID(_ context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.items {
		if t.ProjectID == projectID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeTaskRepo) GetByAssignee(_ context.Context, userID uuid.UUID) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.items {
		if t.AssignedToID != nil && *t.AssignedToID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) GetDueOn(_ context.Context, day time.Time) ([]model.Task, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var out []model.Task
	for _, t := range f.items {
		if t.DueDate == nil || t.AssignedToID == nil || t.Status == model.StatusDone {
			continue
		}
		if !t.DueDate.Before(start) && t.DueDate.Before(end) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) GetMaxOrder(_ context.Context, listID uuid.UUID) (int, error) {
	max := 0
	for _, t := range f.items {
		if t.ListID == listID && t.Order > max {
			max = t.Order
		}
	}
	return max, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *model.Task) error {
	if _, ok := f.items[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	cp := *task
	f.items[task.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTaskRepo) Move(_ context.Context, taskID, targetListID uuid.UUID, newOrder int) error {
	t, ok := f.items[taskID]
	if !ok {
		return repository.ErrTaskNotFound
	}
	t.ListID = targetListID
	t.Order = newOrder
	return nil
}

type fakeSubtaskRepo struct {
	items map[uuid.UUID]*model.Subtask
}

func newFakeSubtaskRepo() *fakeSubtaskRepo {
	return &fakeSubtaskRepo{items: make(map[uuid.UUID]*model.Subtask)}
}

func (f *fakeSubtaskRepo) Create(_ context.Context, subtask *model.Subtask) error {
	cp := *subtask
	f.items[subtask.ID] = &cp
	return nil
}

func (f *fakeSubtaskRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Subtask, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, repository.ErrSubtaskNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubtaskRepo) GetByTaskID(_ context.Context, taskID uuid.UUID) ([]model.Subtask, error) {
	var out []model.Subtask
	for _, s := range f.items {
		if s.TaskID == taskID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeSubtaskRepo) GetMaxOrder(_ context.Context, taskID uuid.UUID) (int, error) {
	max := 0
	for _, s := range f.items {
		if s.TaskID == taskID && s.Order > max {
			max = s.Order
		}
	}
	return max, nil
}

func (f *fakeSubtaskRepo) Update(_ context.Context, subtask *model.Subtask) error {
	if _, ok := f.items[subtask.ID]; !ok {
		return repository.ErrSubtaskNotFound
	}
	cp := *subtask
	f.items[subtask.ID] = &cp
	return nil
}

func (f *fakeSubtaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrSubtaskNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeCommentRepo struct {
	items map[uuid.UUID]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{items: make(map[uuid.UUID]*model.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	cp := *comment
	f.items[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) GetByTaskID(_ context.Context, taskID uuid.UUID) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range f.items {
		if c.TaskID == taskID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *model.Comment) error {
	if _, ok := f.items[comment.ID]; !ok {
		return repository.ErrCommentNotFound
	}
	cp := *comment
	f.items[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeAttachmentRepo struct {
	items map[uuid.UUID]*model.Attachment
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{items: make(map[uuid.UUID]*model.Attachment)}
}

func (f *fakeAttachmentRepo) Create(_ context.Context, attachment *model.Attachment) error {
	cp := *attachment
	f.items[attachment.ID] = &cp
	return nil
}

func (f *fakeAttachmentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Attachment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrAttachmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttachmentRepo) GetByTaskID(_ context.Context, taskID uuid.UUID) ([]model.Attachment, error) {
	var out []model.Attachment
	for _, a := range f.items {
		if a.TaskID == taskID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttachmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrAttachmentNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeActivityRepo struct {
	entries []model.ActivityLog
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (f *fakeActivityRepo) Create(_ context.Context, entry *model.ActivityLog) error {
	cp := *entry
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	f.entries = append(f.entries, cp)
	return nil
}

func (f *fakeActivityRepo) GetByWorkspaceID(_ context.Context, workspaceID uuid.UUID, limit int) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, e := range f.entries {
		if e.WorkspaceID != nil && *e.WorkspaceID == workspaceID {
			out = append(out, e)
		}
	}
	return capLimit(out, limit), nil
}

func (f *fakeActivityRepo) GetByProjectID(_ context.Context, projectID uuid.UUID, limit int) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, e := range f.entries {
		if e.ProjectID != nil && *e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return capLimit(out, limit), nil
}

func (f *fakeActivityRepo) GetByTaskID(_ context.Context, taskID uuid.UUID, limit int) ([]model.ActivityLog, error) {
	var out []model.ActivityLog
	for _, e := range f.entries {
		if e.TaskID != nil && *e.TaskID == taskID {
			out = append(out, e)
		}
	}
	return capLimit(out, limit), nil
}

func capLimit(entries []model.ActivityLog, limit int) []model.ActivityLog {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

type fakeNotificationRepo struct {
	items map[uuid.UUID]*model.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: make(map[uuid.UUID]*model.Notification)}
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	cp := *notification
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	f.items[cp.ID] = &cp
	return nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Notification, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNotificationRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) GetUnread(_ context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.items {
		if n.UserID == userID && !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range f.items {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) Update(_ context.Context, notification *model.Notification) error {
	if _, ok := f.items[notification.ID]; !ok {
		return repository.ErrNotificationNotFound
	}
	cp := *notification
	f.items[notification.ID] = &cp
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotificationNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeFileStore struct {
	files map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string][]byte)}
}

func (f *fakeFileStore) Save(r io.Reader, fileName string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	relPath := path.Join("attachments", uuid.New().String()+"_"+fileName)
	f.files[relPath] = buf.Bytes()
	return relPath, nil
}

func (f *fakeFileStore) Delete(relPath string) error {
	delete(f.files, relPath)
	return nil
}

func (f *fakeFileStore) Exists(relPath string) bool {
	_, ok := f.files[relPath]
	return ok
}
