package adaptor

import (
	"context"
	"errors"
	"net/http"

	"clearcode-server/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"google.golang.org/grpc/codes"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// PostError 将业务错误映射为 HTTP 响应, 响应体统一为 {"error": msg}
func PostError(c *app.RequestContext, err error) {
	var en *consts.Errno
	if errors.As(err, &en) {
		st := en.HTTPStatus()
		if st == 0 {
			st = httpStatusFromCode(en.Code())
		}
		body := utils.H{"error": en.Error()}
		if en.Detail() != "" {
			body["detail"] = en.Detail()
		}
		c.JSON(st, body)
		return
	}
	// 存储层等未分类错误: 500, 错误信息进响应体
	c.JSON(http.StatusInternalServerError, utils.H{"error": err.Error()})
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
