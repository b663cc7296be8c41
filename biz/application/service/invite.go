package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"clearcode-server/biz/adaptor"
	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/repository/assignment"
	"clearcode-server/biz/infrastructure/repository/invite"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IInviteService interface {
	ListInvited(ctx context.Context, assignmentID string) ([]*show.InviteInfo, error)
	CreateInvite(ctx context.Context, assignmentID string, req *show.CreateInviteReq) (*show.InviteInfo, error)
	DeleteInvite(ctx context.Context, assignmentID, inviteID string) (*show.DeleteResp, error)
}

type InviteService struct {
	AssignmentMapper assignment.IMongoMapper
	InviteMapper     invite.IMongoMapper
}

var InviteServiceSet = wire.NewSet(
	wire.Struct(new(InviteService), "*"),
	wire.Bind(new(IInviteService), new(*InviteService)),
)

// ListInvited 获取作业的全部邀请
func (s *InviteService) ListInvited(ctx context.Context, assignmentID string) ([]*show.InviteInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = s.findOwnedAssignment(ctx, assignmentID, meta.GetUserId()); err != nil {
		return nil, err
	}

	invites, err := s.InviteMapper.FindByAssignmentID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return lo.Map(invites, func(i *invite.Invite, _ int) *show.InviteInfo {
		return inviteInfo(i)
	}), nil
}

// CreateInvite 邀请学生. 同一作业同一 github 用户名只允许一条邀请.
// 契约说明: 查重与插入非原子, 并发重复邀请存在竞态窗口, 底层存储未加唯一约束.
func (s *InviteService) CreateInvite(ctx context.Context, assignmentID string, req *show.CreateInviteReq) (*show.InviteInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.findOwnedAssignment(ctx, assignmentID, meta.GetUserId())
	if err != nil {
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(req.GithubUsername))
	if username == "" {
		return nil, consts.ErrUsernameRequired
	}

	existing, err := s.InviteMapper.FindByAssignmentIDAndUsername(ctx, assignmentID, username)
	if err != nil && !errors.Is(err, consts.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, consts.ErrAlreadyInvited
	}

	i := &invite.Invite{
		AssignmentID:   assignmentID,
		AssignmentName: a.Name,
		GithubUsername: username,
		AvatarUrl:      req.AvatarUrl,
		Name:           req.Name,
		Status:         consts.StatusPending,
		InvitedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err = s.InviteMapper.Insert(ctx, i); err != nil {
		return nil, err
	}
	log.CtxInfo(ctx, "[invites] invited %s to assignment %s", username, assignmentID)
	return inviteInfo(i), nil
}

// DeleteInvite 删除邀请, 要求邀请归属于路径中的作业
func (s *InviteService) DeleteInvite(ctx context.Context, assignmentID, inviteID string) (*show.DeleteResp, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = s.findOwnedAssignment(ctx, assignmentID, meta.GetUserId()); err != nil {
		return nil, err
	}

	i, err := s.InviteMapper.FindOne(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if i.AssignmentID != assignmentID {
		return nil, consts.ErrInviteMismatch
	}
	if err = s.InviteMapper.Delete(ctx, inviteID); err != nil {
		return nil, err
	}
	return &show.DeleteResp{Id: inviteID}, nil
}

func (s *InviteService) findOwnedAssignment(ctx context.Context, id, userID string) (*assignment.Assignment, error) {
	a, err := s.AssignmentMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, consts.ErrForbidden
	}
	return a, nil
}

func inviteInfo(i *invite.Invite) *show.InviteInfo {
	return &show.InviteInfo{
		Id:             i.ID.Hex(),
		GithubUsername: i.GithubUsername,
		AvatarUrl:      i.AvatarUrl,
		Name:           i.Name,
		AssignmentName: i.AssignmentName,
		InvitedAt:      i.InvitedAt,
		Status:         i.Status,
	}
}
