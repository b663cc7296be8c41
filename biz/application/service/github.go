package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"clearcode-server/biz/application/dto/clearcode/show"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/util"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/google/wire"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const rateLimitMessage = "GitHub rate limit exceeded. Configure a GitHub token for higher limits, or wait a minute."

type IGithubService interface {
	SearchUsers(ctx context.Context, q string) (*show.SearchUsersResp, error)
	GetUser(ctx context.Context, username string) (*show.GithubUserInfo, error)
}

type GithubService struct {
	Client *util.GithubClient
}

var GithubServiceSet = wire.NewSet(
	wire.Struct(new(GithubService), "*"),
	wire.Bind(new(IGithubService), new(*GithubService)),
)

// SearchUsers 联想搜索. 上游错误一律折叠为 200 + error 字段, 不向前端透出 5xx.
func (s *GithubService) SearchUsers(ctx context.Context, q string) (*show.SearchUsersResp, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < 2 {
		return &show.SearchUsersResp{Items: []show.GithubUserInfo{}}, nil
	}

	log.CtxInfo(ctx, "[GitHub search] query=%q token=%v", q, s.Client.HasToken())

	status, body, err := s.Client.SearchUsers(ctx, q)
	if err != nil {
		log.CtxError(ctx, "GitHub API request failed: %v", err)
		return &show.SearchUsersResp{Items: []show.GithubUserInfo{}, Error: "GitHub API unavailable"}, nil
	}
	if status == 403 {
		// 触发限流也返回 200, 让前端展示提示
		return &show.SearchUsersResp{Items: []show.GithubUserInfo{}, Error: rateLimitMessage}, nil
	}
	if status != 200 {
		return &show.SearchUsersResp{Items: []show.GithubUserInfo{}, Error: upstreamMessage(body)}, nil
	}

	var data struct {
		Items []struct {
			Login     string `json:"login"`
			AvatarUrl string `json:"avatar_url"`
		} `json:"items"`
	}
	if err = json.Unmarshal(body, &data); err != nil {
		return &show.SearchUsersResp{Items: []show.GithubUserInfo{}, Error: "GitHub API error"}, nil
	}

	items := make([]show.GithubUserInfo, 0, len(data.Items))
	for _, u := range data.Items {
		if len(items) >= 10 {
			break
		}
		items = append(items, show.GithubUserInfo{
			Login:     u.Login,
			AvatarUrl: u.AvatarUrl,
			// 搜索接口不带显示名, 用 login 兜底
			Name: u.Login,
		})
	}
	return &show.SearchUsersResp{Items: items}, nil
}

// GetUser 精确查询用户. 与搜索不同, 上游状态码按约定向调用方透传.
func (s *GithubService) GetUser(ctx context.Context, username string) (*show.GithubUserInfo, error) {
	username = strings.TrimSpace(username)
	if username == "" || !usernamePattern.MatchString(username) {
		return nil, consts.ErrInvalidUsername
	}

	log.CtxInfo(ctx, "[GitHub user] username=%q token=%v", username, s.Client.HasToken())

	status, body, err := s.Client.GetUser(ctx, username)
	if err != nil {
		log.CtxError(ctx, "GitHub API request failed: %v", err)
		return nil, consts.ErrGithubUnavailable
	}
	if status == 404 {
		return nil, consts.ErrGithubUserNotFound
	}
	if status != 200 {
		return nil, consts.NewErrnoWithStatus(status, errors.New("GitHub API error")).WithDetail(string(body))
	}

	var data struct {
		Login     string `json:"login"`
		AvatarUrl string `json:"avatar_url"`
		Name      string `json:"name"`
	}
	if err = json.Unmarshal(body, &data); err != nil {
		return nil, consts.ErrGithubUnavailable
	}
	if data.Name == "" {
		data.Name = data.Login
	}
	return &show.GithubUserInfo{
		Login:     data.Login,
		AvatarUrl: data.AvatarUrl,
		Name:      data.Name,
	}, nil
}

func upstreamMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if len(body) > 200 {
		body = body[:200]
	}
	if len(body) > 0 {
		return string(body)
	}
	return "GitHub API error"
}
