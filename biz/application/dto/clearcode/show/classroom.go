package show

type ClassroomInfo struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Students    []any  `json:"students"`
}

type CreateClassroomReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Students    []any  `json:"students"`
}

// UpdateClassroomReq 部分更新, 指针区分字段是否出现
type UpdateClassroomReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Students    *[]any  `json:"students"`
}

type DeleteResp struct {
	Id string `json:"id"`
}
