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

// ListAssignments 作业列表, 附带已邀请人数
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().AssignmentService.ListAssignments(ctx)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// CreateAssignment 创建作业
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}
	resp, err := provider.Get().AssignmentService.CreateAssignment(ctx, &req)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusCreated, resp)
}

// GetAssignment 作业详情
func GetAssignment(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().AssignmentService.GetAssignment(ctx, c.Param("id"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// UpdateAssignment 部分更新作业
func UpdateAssignment(ctx context.Context, c *app.RequestContext) {
	var req show.UpdateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}
	resp, err := provider.Get().AssignmentService.UpdateAssignment(ctx, c.Param("id"), &req)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// DeleteAssignment 删除作业并级联删除邀请
func DeleteAssignment(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().AssignmentService.DeleteAssignment(ctx, c.Param("id"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// ListInvited 作业的邀请列表
func ListInvited(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().InviteService.ListInvited(ctx, c.Param("id"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// CreateInvite 邀请学生
func CreateInvite(ctx context.Context, c *app.RequestContext) {
	var req show.CreateInviteReq
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
		return
	}
	resp, err := provider.Get().InviteService.CreateInvite(ctx, c.Param("id"), &req)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusCreated, resp)
}

// DeleteInvite 删除邀请
func DeleteInvite(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().InviteService.DeleteInvite(ctx, c.Param("id"), c.Param("inviteId"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// GetProgress 作业进度, 聚合未实现, 固定返回空对象
func GetProgress(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ExtensionService.GetProgress(ctx, c.Param("id"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}
