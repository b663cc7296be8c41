package controller

import (
	"context"
	"encoding/json"

	"clearcode-server/biz/adaptor"
	"clearcode-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// AssignmentsForUser 按 github 用户名查作业, 公开接口
func AssignmentsForUser(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ExtensionService.AssignmentsForUser(ctx, c.Param("githubUsername"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// AssignmentsByGithubId 扩展端轮询接口
func AssignmentsByGithubId(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().ExtensionService.AssignmentsByGithubId(ctx, c.Query("identity"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// PushLineEvent 扩展端推送行级事件, 公开接口
func PushLineEvent(ctx context.Context, c *app.RequestContext) {
	body := map[string]any{}
	if raw := c.Request.Body(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			c.JSON(consts.StatusBadRequest, utils.H{"error": "invalid JSON body"})
			return
		}
	}
	resp, err := provider.Get().ExtensionService.PushLineEvent(ctx, body)
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}
