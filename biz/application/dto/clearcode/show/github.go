package show

type GithubUserInfo struct {
	Login     string `json:"login"`
	AvatarUrl string `json:"avatar_url"`
	Name      string `json:"name"`
}

// SearchUsersResp 搜索失败时折叠为 200 + error, 避免阻塞前端联想
type SearchUsersResp struct {
	Items []GithubUserInfo `json:"items"`
	Error string           `json:"error,omitempty"`
}
