package controller

import (
	"context"

	"clearcode-server/biz/adaptor"
	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListClassrooms 班级列表
func ListClassrooms(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ClassroomService.ListClassrooms(ctx)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// CreateClassroom 创建班级
func CreateClassroom(ctx context.Context, c *app.RequestContext) {
	var req show.CreateClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}
	resp, err := provider.Get().ClassroomService.CreateClassroom(ctx, &req)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusCreated, resp)
}

// GetClassroom 班级详情
func GetClassroom(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ClassroomService.GetClassroom(ctx, c.Param("id"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// UpdateClassroom 部分更新班级
func UpdateClassroom(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}
	resp, err := provider.Get().ClassroomService.UpdateClassroom(ctx, c.Param("id"), &req)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// DeleteClassroom 删除班级
func DeleteClassroom(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ClassroomService.DeleteClassroom(ctx, c.Param("id"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}
