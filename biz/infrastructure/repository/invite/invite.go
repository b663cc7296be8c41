package invite

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Invite struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	// AssignmentName 邀请时的作业名称快照
	AssignmentName string    `bson:"assignment_name" json:"assignmentName"`
	GithubUsername string    `bson:"github_username" json:"githubUsername"`
	AvatarUrl      *string   `bson:"avatar_url" json:"avatarUrl"`
	Name           *string   `bson:"name" json:"name"`
	Status         string    `bson:"status" json:"status"`
	InvitedAt      string    `bson:"invited_at" json:"invitedAt"`
	CreateTime     time.Time `bson:"create_time" json:"createTime"`
}
