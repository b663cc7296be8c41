package consts

// 数据库相关
const (
	ID             = "_id"
	UserID         = "user_id"
	Name           = "name"
	Description    = "description"
	Students       = "students"
	DueDate        = "due_date"
	MaxGroupSize   = "max_group_size"
	Groups         = "groups"
	AssignmentID   = "assignment_id"
	GithubUsername = "github_username"
)

// http
const (
	Get             = "GET"
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// 默认值
const (
	DefaultApiPrefix = "/api/v1"
	DefaultGithubURL = "https://api.github.com"
	StatusPending    = "pending"
	ServiceName      = "server"
)

// 运行环境
const (
	StateProd = "prod"
	StateTest = "test"
	StateDev  = "dev"
)
