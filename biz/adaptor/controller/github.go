package controller

import (
	"context"

	"clearcode-server/biz/adaptor"
	"clearcode-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SearchUsers GitHub 用户联想搜索
func SearchUsers(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().GithubService.SearchUsers(ctx, c.Query("q"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// GetUser GitHub 用户精确查询
func GetUser(ctx context.Context, c *app.RequestContext) {
	resp, err := provider.Get().GithubService.GetUser(ctx, c.Param("username"))
	if err != nil {
		adaptor.PostError(c, err)
		return
	}
	c.JSON(consts.StatusOK, resp)
}
