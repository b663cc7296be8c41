package show

type InviteInfo struct {
	Id             string  `json:"id"`
	GithubUsername string  `json:"githubUsername"`
	AvatarUrl      *string `json:"avatarUrl"`
	Name           *string `json:"name"`
	AssignmentName string  `json:"assignmentName"`
	InvitedAt      string  `json:"invitedAt"`
	Status         string  `json:"status"`
}

type CreateInviteReq struct {
	GithubUsername string  `json:"githubUsername"`
	AvatarUrl      *string `json:"avatarUrl"`
	Name           *string `json:"name"`
}
