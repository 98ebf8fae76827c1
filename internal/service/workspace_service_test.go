package service_test

import (
	"context"
	"testing"

	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type workspaceFixture struct {
	users         *fakeUserRepo
	workspaces    *fakeWorkspaceRepo
	members       *fakeMemberRepo
	activity      *fakeActivityRepo
	notifications *fakeNotificationRepo
	svc           *service.WorkspaceService
}

func newWorkspaceFixture() *workspaceFixture {
	f := &workspaceFixture{
		users:         newFakeUserRepo(),
		workspaces:    newFakeWorkspaceRepo(),
		members:       newFakeMemberRepo(),
		activity:      newFakeActivityRepo(),
		notifications: newFakeNotificationRepo(),
	}
	f.svc = service.NewWorkspaceService(f.workspaces, f.members, f.users, f.activity, f.notifications)
	return f
}

func TestWorkspaceService_Create_AddsOwnerAsMember(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, workspace.OwnerID)
	assert.Equal(t, 1, workspace.MemberCount)

	members, err := f.svc.Members(context.Background(), workspace.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, owner.ID, members[0].UserID)
	assert.Equal(t, model.RoleOwner, members[0].Role)

	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, model.ActivityCreated, f.activity.entries[0].Type)
}

func TestWorkspaceService_Update_OwnerOnly(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")
	other := f.users.add("other@example.com", "Oscar", "Other")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), workspace.ID, service.UpdateWorkspaceInput{Name: "Evil"}, other.ID)
	assert.True(t, service.IsForbidden(err))

	updated, err := f.svc.Update(context.Background(), workspace.ID, service.UpdateWorkspaceInput{Name: "Acme 2"}, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme 2", updated.Name)
}

func TestWorkspaceService_Invite(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")
	invitee := f.users.add("member@example.com", "Mia", "Member")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	err = f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{
		Email: "member@example.com",
		Role:  model.RoleMember,
	}, owner.ID)
	require.NoError(t, err)

	members, err := f.svc.Members(context.Background(), workspace.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	// The invitee gets an in-app notification.
	notifications, err := f.notifications.GetByUserID(context.Background(), invitee.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Added to workspace", notifications[0].Title)
}

func TestWorkspaceService_Invite_UnknownEmail(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	err = f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{Email: "ghost@example.com"}, owner.ID)
	assert.True(t, service.IsValidation(err))
	assert.EqualError(t, err, "User not found")
}

func TestWorkspaceService_Invite_AlreadyMember(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")
	f.users.add("member@example.com", "Mia", "Member")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	input := service.InviteUserInput{Email: "member@example.com", Role: model.RoleMember}
	require.NoError(t, f.svc.Invite(context.Background(), workspace.ID, input, owner.ID))

	err = f.svc.Invite(context.Background(), workspace.ID, input, owner.ID)
	assert.True(t, service.IsValidation(err))
	assert.EqualError(t, err, "User is already a member")
}

func TestWorkspaceService_Invite_MemberCannotInvite(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")
	member := f.users.add("member@example.com", "Mia", "Member")
	f.users.add("third@example.com", "Tess", "Third")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{
		Email: "member@example.com",
		Role:  model.RoleMember,
	}, owner.ID))

	err = f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{
		Email: "third@example.com",
	}, member.ID)
	assert.True(t, service.IsForbidden(err))
	assert.EqualError(t, err, "Only owners and admins can invite users")
}

func TestWorkspaceService_Invite_AdminCanInvite(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")
	admin := f.users.add("admin@example.com", "Ada", "Admin")
	f.users.add("third@example.com", "Tess", "Third")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{
		Email: "admin@example.com",
		Role:  model.RoleAdmin,
	}, owner.ID))

	err = f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{
		Email: "third@example.com",
	}, admin.ID)
	assert.NoError(t, err)
}

func TestWorkspaceService_RemoveMember_OwnerOnly(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")
	member := f.users.add("member@example.com", "Mia", "Member")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Invite(context.Background(), workspace.ID, service.InviteUserInput{
		Email: "member@example.com",
		Role:  model.RoleMember,
	}, owner.ID))

	members, err := f.svc.Members(context.Background(), workspace.ID)
	require.NoError(t, err)
	var memberRowID = members[0].ID
	for _, m := range members {
		if m.UserID == member.ID {
			memberRowID = m.ID
		}
	}

	err = f.svc.RemoveMember(context.Background(), workspace.ID, memberRowID, member.ID)
	assert.True(t, service.IsForbidden(err))

	require.NoError(t, f.svc.RemoveMember(context.Background(), workspace.ID, memberRowID, owner.ID))

	members, err = f.svc.Members(context.Background(), workspace.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestWorkspaceService_Delete_SoftDeletes(t *testing.T) {
	f := newWorkspaceFixture()
	owner := f.users.add("owner@example.com", "Olive", "Owner")

	workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "Acme"}, owner.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), workspace.ID, owner.ID))

	_, err = f.svc.Get(context.Background(), workspace.ID)
	assert.Error(t, err)
}
