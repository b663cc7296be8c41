package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clearcode-server/biz/adaptor"
	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/repository/assignment"
	"clearcode-server/biz/infrastructure/repository/invite"
	"clearcode-server/biz/infrastructure/repository/lineevent"
	"clearcode-server/biz/infrastructure/util"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
)

// 扩展端推送事件的必填字段
var requiredPushFields = []string{
	"AssignmentID", "GitHubName", "GitHubLink", "FilePath", "LineNumber", "LineContent",
}

type IExtensionService interface {
	AssignmentsForUser(ctx context.Context, githubUsername string) ([]*show.AssignmentInfo, error)
	AssignmentsByGithubId(ctx context.Context, identity string) (*show.AssignmentsByGithubIdResp, error)
	PushLineEvent(ctx context.Context, body map[string]any) (*show.PushLineEventResp, error)
	GetProgress(ctx context.Context, assignmentID string) (map[string]any, error)
}

type ExtensionService struct {
	AssignmentMapper assignment.IMongoMapper
	InviteMapper     invite.IMongoMapper
	LineEventMapper  lineevent.IMongoMapper
}

var ExtensionServiceSet = wire.NewSet(
	wire.Struct(new(ExtensionService), "*"),
	wire.Bind(new(IExtensionService), new(*ExtensionService)),
)

// AssignmentsForUser 按 github 用户名汇总其被邀请的作业, 公开接口
func (s *ExtensionService) AssignmentsForUser(ctx context.Context, githubUsername string) ([]*show.AssignmentInfo, error) {
	username := strings.ToLower(strings.TrimSpace(githubUsername))
	if username == "" {
		return nil, consts.ErrUsernameRequired
	}

	invites, err := s.InviteMapper.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	ids := lo.Uniq(lo.Map(invites, func(i *invite.Invite, _ int) string {
		return i.AssignmentID
	}))

	items := make([]*show.AssignmentInfo, 0, len(ids))
	for _, id := range ids {
		a, err := s.AssignmentMapper.FindOne(ctx, id)
		if errors.Is(err, consts.ErrNotFound) {
			// 邀请残留但作业已删, 跳过
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, assignmentInfo(a))
	}
	return items, nil
}

// AssignmentsByGithubId 扩展端轮询用: 返回 {identity, assignments:[{id,name}]}
func (s *ExtensionService) AssignmentsByGithubId(ctx context.Context, identity string) (*show.AssignmentsByGithubIdResp, error) {
	identity = strings.ToLower(strings.TrimSpace(identity))
	log.CtxInfo(ctx, "[extension] identity=%q", identity)
	if identity == "" {
		return &show.AssignmentsByGithubIdResp{Identity: "", Assignments: []show.AssignmentBrief{}}, nil
	}

	invites, err := s.InviteMapper.FindByUsername(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &show.AssignmentsByGithubIdResp{
		Identity: identity,
		Assignments: lo.Map(invites, func(i *invite.Invite, _ int) show.AssignmentBrief {
			return show.AssignmentBrief{Id: i.AssignmentID, Name: i.AssignmentName}
		}),
	}, nil
}

// PushLineEvent 落库扩展端推送的行级事件, 公开接口
func (s *ExtensionService) PushLineEvent(ctx context.Context, body map[string]any) (*show.PushLineEventResp, error) {
	var missing []string
	for _, field := range requiredPushFields {
		if _, ok := body[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, consts.NewErrno(codes.InvalidArgument,
			fmt.Errorf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	// 宽松解码: 数字转字符串, 字符串数字转整数
	req := new(show.PushLineEventReq)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           req,
	})
	if err != nil {
		return nil, err
	}
	if err = decoder.Decode(body); err != nil {
		return nil, consts.NewErrno(codes.InvalidArgument, fmt.Errorf("invalid payload: %s", err.Error()))
	}

	event := &lineevent.LineEvent{
		AssignmentID:   req.AssignmentID,
		GithubUsername: strings.ToLower(strings.TrimSpace(req.GitHubName)),
		GithubLink:     req.GitHubLink,
		FilePath:       req.FilePath,
		LineNumber:     req.LineNumber,
		LineContent:    req.LineContent,
		UpdatedAt:      req.UpdatedAt,
	}
	if err = s.LineEventMapper.Insert(ctx, event); err != nil {
		return nil, err
	}
	log.CtxInfo(ctx, "[push] stored event: %s", util.JSONF(event))
	return &show.PushLineEventResp{Ok: true, Id: event.ID.Hex()}, nil
}

// GetProgress 拉取作业的行级事件.
// 聚合口径尚未定型, 当前仅拉取不聚合, 固定返回空对象.
func (s *ExtensionService) GetProgress(ctx context.Context, assignmentID string) (map[string]any, error) {
	if _, err := adaptor.ExtractUserMeta(ctx); err != nil {
		return nil, err
	}
	events, err := s.LineEventMapper.FindByAssignmentID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	log.CtxInfo(ctx, "[progress] assignment=%s events=%d", assignmentID, len(events))
	return map[string]any{}, nil
}
