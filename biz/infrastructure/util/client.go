package util

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/consts"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const githubTimeout = 10 * time.Second

// GithubClient 上游 GitHub API 客户端
type GithubClient struct {
	Client  *http.Client
	BaseURL string
	token   string
}

func NewGithubClient(config *config.Config) *GithubClient {
	base := strings.TrimSpace(config.Api.GithubURL)
	if base == "" {
		base = consts.DefaultGithubURL
	}
	return &GithubClient{
		Client: &http.Client{
			Timeout:   githubTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL: strings.TrimRight(base, "/"),
		token:   strings.TrimSpace(config.Api.GithubToken),
	}
}

// HasToken 仅用于日志, 不暴露 token 本身
func (c *GithubClient) HasToken() bool {
	return c.token != ""
}

// SendRequest 发送请求并原样返回状态码与响应体
func (c *GithubClient) SendRequest(ctx context.Context, method, path string, query url.Values) (int, []byte, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	// GitHub 的 PAT 同时接受 "token" 和 "Bearer" 前缀
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// SearchUsers 搜索用户, 限定 user 类型, 最多 10 条
func (c *GithubClient) SearchUsers(ctx context.Context, q string) (int, []byte, error) {
	query := url.Values{}
	query.Set("q", q+" type:user")
	query.Set("per_page", "10")
	return c.SendRequest(ctx, consts.Get, "/search/users", query)
}

// GetUser 按用户名精确查询
func (c *GithubClient) GetUser(ctx context.Context, username string) (int, []byte, error) {
	return c.SendRequest(ctx, consts.Get, "/users/"+username, nil)
}
