package adaptor

import (
	"context"
	"strings"

	"clearcode-server/biz/application/dto/basic"
	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

const bearerPrefix = "Bearer "

// ExtractUserMeta 从 Authorization 头中解出用户身份.
// 主路径走验签; 仅当 DevSkipTokenVerify 且非 prod 时允许未验签解码兜底.
func ExtractUserMeta(ctx context.Context) (*basic.UserMeta, error) {
	c, err := ExtractContext(ctx)
	if err != nil {
		return nil, consts.ErrMissingAuth
	}
	auth := string(c.GetHeader("Authorization"))
	if !strings.HasPrefix(auth, bearerPrefix) {
		return nil, consts.ErrMissingAuth
	}
	tokenString := strings.TrimSpace(auth[len(bearerPrefix):])
	if tokenString == "" {
		return nil, consts.ErrMissingAuth
	}

	conf := config.GetConfig()
	if conf.Auth.PublicKey != "" {
		token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
			return jwt.ParseECPublicKeyFromPEM([]byte(conf.Auth.PublicKey))
		})
		if err == nil && token.Valid {
			if meta := metaFromClaims(token.Claims); meta != nil {
				return meta, nil
			}
		} else {
			log.CtxInfo(ctx, "token verification failed, err=%v", err)
		}
	}

	// 兜底路径: 不验签直接解 payload, 线上环境不可达
	if conf.Auth.DevSkipTokenVerify && conf.State != consts.StateProd {
		token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
		if err == nil {
			if meta := metaFromClaims(token.Claims); meta != nil {
				return meta, nil
			}
		}
	}
	return nil, consts.ErrInvalidToken
}

func metaFromClaims(claims jwt.Claims) *basic.UserMeta {
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	meta := new(basic.UserMeta)
	if err := mapstructure.Decode(map[string]any(mapClaims), meta); err != nil {
		return nil
	}
	if meta.UserId == "" {
		if uid, ok := mapClaims["uid"].(string); ok {
			meta.UserId = uid
		}
	}
	if meta.UserId == "" {
		return nil
	}
	return meta
}
