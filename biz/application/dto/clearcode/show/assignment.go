package show

import "encoding/json"

type AssignmentInfo struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
	DueDate      string `json:"dueDate"`
	IsGroup      bool   `json:"isGroup"`
	MaxGroupSize *int64 `json:"maxGroupSize"`
	Groups       []any  `json:"groups"`
}

// ListAssignmentItem 列表项在详情之上附带已邀请人数
type ListAssignmentItem struct {
	AssignmentInfo
	InvitedCount int64 `json:"invitedCount"`
}

type CreateAssignmentReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	// IsGroup 兼容 true/"true"/1, 入库前统一转 bool
	IsGroup      any    `json:"isGroup"`
	DueDate      string `json:"dueDate"`
	MaxGroupSize *int64 `json:"maxGroupSize"`
	Groups       []any  `json:"groups"`
}

// UpdateAssignmentReq 部分更新; maxGroupSize 用 RawMessage 区分 缺失/null/有值
type UpdateAssignmentReq struct {
	Name         *string         `json:"name"`
	Description  *string         `json:"description"`
	DueDate      *string         `json:"dueDate"`
	MaxGroupSize json.RawMessage `json:"maxGroupSize"`
	Groups       *[]any          `json:"groups"`
}
