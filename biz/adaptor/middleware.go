package adaptor

import (
	"context"
	"time"

	"clearcode-server/biz/infrastructure/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/logx"
)

// Inject 把 hertz RequestContext 塞进 ctx, 供 ExtractUserMeta 使用
func Inject() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		c.Next(InjectContext(ctx, c))
	}
}

// RequestID 透传或生成请求 id, 并挂到日志上下文
func RequestID() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		id := string(c.GetHeader("X-Request-Id"))
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-Id", id)
		c.Next(logx.ContextWithFields(ctx, logx.Field("request_id", id)))
	}
}

// AccessLog 记录每个请求, 健康检查等高频路径用 Log.NoLogPaths 屏蔽
func AccessLog() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)

		path := string(c.Path())
		if lo.Contains(config.GetConfig().Log.NoLogPaths, path) {
			return
		}
		logx.WithContext(ctx).Infof("%s %s %d %s",
			c.Method(), path, c.Response.StatusCode(), time.Since(start))
	}
}
