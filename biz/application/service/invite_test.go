package service

import (
	"testing"
	"time"

	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInviteService(t *testing.T) (*InviteService, *fakeInviteMapper, string) {
	t.Helper()
	assignments := newFakeAssignmentMapper()
	invites := newFakeInviteMapper()
	svc := &InviteService{AssignmentMapper: assignments, InviteMapper: invites}

	assignmentSvc := &AssignmentService{AssignmentMapper: assignments, InviteMapper: invites}
	created, err := assignmentSvc.CreateAssignment(authedContext(t, "teacher-1"), &show.CreateAssignmentReq{
		Name: "HW1", DueDate: "2026-09-01",
	})
	require.NoError(t, err)
	return svc, invites, created.Id
}

func TestCreateInvite(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)
	ctx := authedContext(t, "teacher-1")

	avatar := "https://example.com/a.png"
	info, err := svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{
		GithubUsername: "  Alice  ",
		AvatarUrl:      &avatar,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, info.Id)
	assert.Equal(t, "alice", info.GithubUsername)
	assert.Equal(t, "HW1", info.AssignmentName)
	assert.Equal(t, consts.StatusPending, info.Status)

	invitedAt, err := time.Parse(time.RFC3339, info.InvitedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), invitedAt, time.Minute)
}

func TestCreateInvite_UsernameRequired(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)

	_, err := svc.CreateInvite(authedContext(t, "teacher-1"), assignmentID, &show.CreateInviteReq{
		GithubUsername: "   ",
	})
	assert.ErrorIs(t, err, consts.ErrUsernameRequired)
}

func TestCreateInvite_DuplicateConflict(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)
	ctx := authedContext(t, "teacher-1")

	_, err := svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{GithubUsername: "alice"})
	require.NoError(t, err)

	// 大小写和空白不影响判重
	_, err = svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{GithubUsername: " ALICE "})
	assert.ErrorIs(t, err, consts.ErrAlreadyInvited)
}

func TestCreateInvite_NotOwner(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)

	_, err := svc.CreateInvite(authedContext(t, "teacher-2"), assignmentID, &show.CreateInviteReq{
		GithubUsername: "alice",
	})
	assert.ErrorIs(t, err, consts.ErrForbidden)
}

func TestListInvited(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)
	ctx := authedContext(t, "teacher-1")

	_, err := svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{GithubUsername: "alice"})
	require.NoError(t, err)
	_, err = svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{GithubUsername: "bob"})
	require.NoError(t, err)

	items, err := svc.ListInvited(ctx, assignmentID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDeleteInvite(t *testing.T) {
	svc, invites, assignmentID := newInviteService(t)
	ctx := authedContext(t, "teacher-1")

	created, err := svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{GithubUsername: "alice"})
	require.NoError(t, err)

	resp, err := svc.DeleteInvite(ctx, assignmentID, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, resp.Id)
	assert.Empty(t, invites.store)
}

func TestDeleteInvite_WrongAssignment(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)
	ctx := authedContext(t, "teacher-1")

	assignmentSvc := &AssignmentService{AssignmentMapper: svc.AssignmentMapper, InviteMapper: svc.InviteMapper}
	other, err := assignmentSvc.CreateAssignment(ctx, &show.CreateAssignmentReq{Name: "HW2", DueDate: "2026-09-02"})
	require.NoError(t, err)

	created, err := svc.CreateInvite(ctx, assignmentID, &show.CreateInviteReq{GithubUsername: "alice"})
	require.NoError(t, err)

	_, err = svc.DeleteInvite(ctx, other.Id, created.Id)
	assert.ErrorIs(t, err, consts.ErrInviteMismatch)
}

func TestDeleteInvite_MissingInvite(t *testing.T) {
	svc, _, assignmentID := newInviteService(t)

	_, err := svc.DeleteInvite(authedContext(t, "teacher-1"), assignmentID, "0123456789abcdef01234567")
	assert.ErrorIs(t, err, consts.ErrNotFound)
}
