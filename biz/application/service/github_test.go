package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGithubService(handler http.Handler) (*GithubService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := util.NewGithubClient(&config.Config{Api: config.API{GithubURL: srv.URL}})
	return &GithubService{Client: client}, srv
}

func TestSearchUsers_ShortQuerySkipsUpstream(t *testing.T) {
	var hits atomic.Int64
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	// 单个多字节字符也算 1 个字符, 不触发上游调用
	for _, q := range []string{"", "a", " a ", "漢", " 漢 "} {
		resp, err := svc.SearchUsers(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Empty(t, resp.Error)
	}
	assert.Equal(t, int64(0), hits.Load())
}

func TestSearchUsers_MapsItems(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/users", r.URL.Path)
		assert.Equal(t, "alice type:user", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"login":"alice","avatar_url":"https://a/1.png"},
			{"login":"alicey","avatar_url":"https://a/2.png"}
		]}`))
	}))
	defer srv.Close()

	resp, err := svc.SearchUsers(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "alice", resp.Items[0].Login)
	assert.Equal(t, "https://a/1.png", resp.Items[0].AvatarUrl)
	// 搜索结果没有显示名, 用 login 兜底
	assert.Equal(t, "alice", resp.Items[0].Name)
	assert.Empty(t, resp.Error)
}

func TestSearchUsers_RateLimited(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	resp, err := svc.SearchUsers(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, rateLimitMessage, resp.Error)
}

func TestSearchUsers_UpstreamErrorFoldedTo200(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream exploded"}`))
	}))
	defer srv.Close()

	resp, err := svc.SearchUsers(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "upstream exploded", resp.Error)
}

func TestSearchUsers_ConnectionError(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	resp, err := svc.SearchUsers(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "GitHub API unavailable", resp.Error)
}

func TestGetUser_InvalidUsernameSkipsUpstream(t *testing.T) {
	var hits atomic.Int64
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	for _, name := range []string{"", "   ", "bad name", "semi;colon", "a/b"} {
		_, err := svc.GetUser(context.Background(), name)
		assert.ErrorIs(t, err, consts.ErrInvalidUsername, "username=%q", name)
	}
	assert.Equal(t, int64(0), hits.Load())
}

func TestGetUser_NameFallsBackToLogin(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"alice","avatar_url":"https://a/1.png","name":""}`))
	}))
	defer srv.Close()

	info, err := svc.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Login)
	assert.Equal(t, "alice", info.Name)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := svc.GetUser(context.Background(), "nosuchuser")
	assert.ErrorIs(t, err, consts.ErrGithubUserNotFound)
}

func TestGetUser_UpstreamStatusPassthrough(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := svc.GetUser(context.Background(), "alice")
	require.Error(t, err)
	var en *consts.Errno
	require.ErrorAs(t, err, &en)
	assert.Equal(t, http.StatusInternalServerError, en.HTTPStatus())
	assert.Equal(t, "boom", en.Detail())
}

func TestGetUser_ConnectionError(t *testing.T) {
	svc, srv := newGithubService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := svc.GetUser(context.Background(), "alice")
	assert.ErrorIs(t, err, consts.ErrGithubUnavailable)
}
