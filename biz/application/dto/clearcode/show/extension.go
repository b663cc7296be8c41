package show

type AssignmentBrief struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type AssignmentsByGithubIdResp struct {
	Identity    string            `json:"identity"`
	Assignments []AssignmentBrief `json:"assignments"`
}

// PushLineEventReq 扩展端推送的行级事件, 宽松解码后统一收敛类型
type PushLineEventReq struct {
	AssignmentID string `mapstructure:"AssignmentID"`
	GitHubName   string `mapstructure:"GitHubName"`
	GitHubLink   string `mapstructure:"GitHubLink"`
	FilePath     string `mapstructure:"FilePath"`
	LineNumber   int64  `mapstructure:"LineNumber"`
	LineContent  string `mapstructure:"LineContent"`
	UpdatedAt    string `mapstructure:"updatedAt"`
}

type PushLineEventResp struct {
	Ok bool   `json:"ok"`
	Id string `json:"id"`
}
