package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"clearcode-server/biz/adaptor"
	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/repository/assignment"
	"clearcode-server/biz/infrastructure/repository/invite"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson"
)

type IAssignmentService interface {
	ListAssignments(ctx context.Context) ([]*show.ListAssignmentItem, error)
	CreateAssignment(ctx context.Context, req *show.CreateAssignmentReq) (*show.AssignmentInfo, error)
	GetAssignment(ctx context.Context, id string) (*show.AssignmentInfo, error)
	UpdateAssignment(ctx context.Context, id string, req *show.UpdateAssignmentReq) (*show.AssignmentInfo, error)
	DeleteAssignment(ctx context.Context, id string) (*show.DeleteResp, error)
}

type AssignmentService struct {
	AssignmentMapper assignment.IMongoMapper
	InviteMapper     invite.IMongoMapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// ListAssignments 获取当前用户的作业列表, 附带已邀请人数, 按 dueDate 降序
func (s *AssignmentService) ListAssignments(ctx context.Context) ([]*show.ListAssignmentItem, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.AssignmentMapper.FindByUser(ctx, meta.GetUserId())
	if err != nil {
		return nil, err
	}

	items := make([]*show.ListAssignmentItem, 0, len(assignments))
	for _, a := range assignments {
		count, err := s.InviteMapper.CountByAssignmentID(ctx, a.ID.Hex())
		if err != nil {
			return nil, err
		}
		items = append(items, &show.ListAssignmentItem{
			AssignmentInfo: *assignmentInfo(a),
			InvitedCount:   count,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].DueDate > items[j].DueDate
	})
	log.CtxInfo(ctx, "[assignments] GET fetched count=%d", len(items))
	return items, nil
}

// CreateAssignment 创建作业.
// 注意: 非小组作业时 maxGroupSize 落库为空, 但响应按请求原值回显.
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *show.CreateAssignmentReq) (*show.AssignmentInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, consts.ErrNameRequired
	}
	dueDate := strings.TrimSpace(req.DueDate)
	if dueDate == "" {
		return nil, consts.ErrDueDateRequired
	}
	isGroup := cast.ToBool(req.IsGroup)
	groups := req.Groups
	if groups == nil {
		groups = []any{}
	}
	var maxGroupSize *int64
	if isGroup {
		maxGroupSize = req.MaxGroupSize
	}

	a := &assignment.Assignment{
		UserID:       meta.GetUserId(),
		Name:         name,
		Description:  strings.TrimSpace(req.Description),
		CreatedAt:    strings.TrimSpace(req.CreatedAt),
		DueDate:      dueDate,
		IsGroup:      isGroup,
		MaxGroupSize: maxGroupSize,
		Groups:       groups,
	}
	if err = s.AssignmentMapper.Insert(ctx, a); err != nil {
		return nil, err
	}

	resp := assignmentInfo(a)
	resp.MaxGroupSize = req.MaxGroupSize
	return resp, nil
}

// GetAssignment 查询单个作业
func (s *AssignmentService) GetAssignment(ctx context.Context, id string) (*show.AssignmentInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.findOwned(ctx, id, meta.GetUserId())
	if err != nil {
		return nil, err
	}
	return assignmentInfo(a), nil
}

// UpdateAssignment 部分更新, 未出现的字段不动
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, req *show.UpdateAssignmentReq) (*show.AssignmentInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.findOwned(ctx, id, meta.GetUserId())
	if err != nil {
		return nil, err
	}

	updates := bson.M{}
	if req.Name != nil {
		updates[consts.Name] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates[consts.Description] = strings.TrimSpace(*req.Description)
	}
	if req.DueDate != nil {
		updates[consts.DueDate] = strings.TrimSpace(*req.DueDate)
	}
	if len(req.MaxGroupSize) > 0 {
		if string(req.MaxGroupSize) == "null" {
			updates[consts.MaxGroupSize] = nil
		} else {
			var raw any
			if err = json.Unmarshal(req.MaxGroupSize, &raw); err != nil {
				return nil, consts.ErrMaxGroupSize
			}
			size, err := cast.ToInt64E(raw)
			if err != nil {
				return nil, consts.ErrMaxGroupSize
			}
			updates[consts.MaxGroupSize] = size
		}
	}
	if req.Groups != nil {
		updates[consts.Groups] = *req.Groups
	}
	if len(updates) == 0 {
		return assignmentInfo(a), nil
	}

	if err = s.AssignmentMapper.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}
	a, err = s.AssignmentMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return assignmentInfo(a), nil
}

// DeleteAssignment 删除作业并级联删除其全部邀请.
// 契约说明: 先逐条删邀请再删作业, 中途失败可能留下部分状态, 与底层存储无事务一致.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id string) (*show.DeleteResp, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = s.findOwned(ctx, id, meta.GetUserId()); err != nil {
		return nil, err
	}

	invites, err := s.InviteMapper.FindByAssignmentID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, i := range invites {
		if err = s.InviteMapper.Delete(ctx, i.ID.Hex()); err != nil {
			return nil, err
		}
	}
	if err = s.AssignmentMapper.Delete(ctx, id); err != nil {
		return nil, err
	}
	log.CtxInfo(ctx, "[assignments] deleted assignment %s with %d invites", id, len(invites))
	return &show.DeleteResp{Id: id}, nil
}

func (s *AssignmentService) findOwned(ctx context.Context, id, userID string) (*assignment.Assignment, error) {
	a, err := s.AssignmentMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, consts.ErrForbidden
	}
	return a, nil
}

func assignmentInfo(a *assignment.Assignment) *show.AssignmentInfo {
	info := new(show.AssignmentInfo)
	_ = copier.Copy(info, a)
	info.Id = a.ID.Hex()
	if info.Groups == nil {
		info.Groups = []any{}
	}
	return info
}
