package service

import (
	"context"
	"sort"
	"strings"

	"clearcode-server/biz/adaptor"
	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/repository/classroom"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

type IClassroomService interface {
	ListClassrooms(ctx context.Context) ([]*show.ClassroomInfo, error)
	CreateClassroom(ctx context.Context, req *show.CreateClassroomReq) (*show.ClassroomInfo, error)
	GetClassroom(ctx context.Context, id string) (*show.ClassroomInfo, error)
	UpdateClassroom(ctx context.Context, id string, req *show.UpdateClassroomReq) (*show.ClassroomInfo, error)
	DeleteClassroom(ctx context.Context, id string) (*show.DeleteResp, error)
}

type ClassroomService struct {
	ClassroomMapper classroom.IMongoMapper
}

var ClassroomServiceSet = wire.NewSet(
	wire.Struct(new(ClassroomService), "*"),
	wire.Bind(new(IClassroomService), new(*ClassroomService)),
)

// ListClassrooms 获取当前用户的班级列表, 按名称升序
func (s *ClassroomService) ListClassrooms(ctx context.Context) ([]*show.ClassroomInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	classrooms, err := s.ClassroomMapper.FindByUser(ctx, meta.GetUserId())
	if err != nil {
		return nil, err
	}

	items := lo.Map(classrooms, func(c *classroom.Classroom, _ int) *show.ClassroomInfo {
		return classroomInfo(c)
	})
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	log.CtxInfo(ctx, "[classrooms] GET fetched count=%d", len(items))
	return items, nil
}

// CreateClassroom 创建班级
func (s *ClassroomService) CreateClassroom(ctx context.Context, req *show.CreateClassroomReq) (*show.ClassroomInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, consts.ErrNameRequired
	}
	students := req.Students
	if students == nil {
		students = []any{}
	}

	c := &classroom.Classroom{
		UserID:      meta.GetUserId(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Students:    students,
	}
	if err = s.ClassroomMapper.Insert(ctx, c); err != nil {
		return nil, err
	}
	return classroomInfo(c), nil
}

// GetClassroom 查询单个班级, 非本人创建返回 Forbidden
func (s *ClassroomService) GetClassroom(ctx context.Context, id string) (*show.ClassroomInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.findOwned(ctx, id, meta.GetUserId())
	if err != nil {
		return nil, err
	}
	return classroomInfo(c), nil
}

// UpdateClassroom 部分更新; 传入空 name 时保留原名称, 不落空值
func (s *ClassroomService) UpdateClassroom(ctx context.Context, id string, req *show.UpdateClassroomReq) (*show.ClassroomInfo, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.findOwned(ctx, id, meta.GetUserId())
	if err != nil {
		return nil, err
	}

	updates := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			name = c.Name
		}
		updates[consts.Name] = name
	}
	if req.Description != nil {
		updates[consts.Description] = strings.TrimSpace(*req.Description)
	}
	if req.Students != nil {
		updates[consts.Students] = *req.Students
	}
	if len(updates) == 0 {
		return classroomInfo(c), nil
	}

	if err = s.ClassroomMapper.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}
	c, err = s.ClassroomMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return classroomInfo(c), nil
}

// DeleteClassroom 删除班级
func (s *ClassroomService) DeleteClassroom(ctx context.Context, id string) (*show.DeleteResp, error) {
	meta, err := adaptor.ExtractUserMeta(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = s.findOwned(ctx, id, meta.GetUserId()); err != nil {
		return nil, err
	}
	if err = s.ClassroomMapper.Delete(ctx, id); err != nil {
		return nil, err
	}
	log.CtxInfo(ctx, "[classrooms] deleted classroom %s", id)
	return &show.DeleteResp{Id: id}, nil
}

func (s *ClassroomService) findOwned(ctx context.Context, id, userID string) (*classroom.Classroom, error) {
	c, err := s.ClassroomMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, consts.ErrForbidden
	}
	return c, nil
}

func classroomInfo(c *classroom.Classroom) *show.ClassroomInfo {
	students := c.Students
	if students == nil {
		students = []any{}
	}
	return &show.ClassroomInfo{
		Id:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		Students:    students,
	}
}
