package lineevent

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineEvent 由 VSCode 扩展推送的行级编辑事件, 只增不改
type LineEvent struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID   string             `bson:"assignment_id" json:"assignmentId"`
	GithubUsername string             `bson:"github_username" json:"githubUsername"`
	GithubLink     string             `bson:"github_link" json:"githubLink"`
	FilePath       string             `bson:"file_path" json:"filePath"`
	LineNumber     int64              `bson:"line_number" json:"lineNumber"`
	LineContent    string             `bson:"line_content" json:"lineContent"`
	UpdatedAt      string             `bson:"updated_at" json:"updatedAt"`
	CreateTime     time.Time          `bson:"create_time" json:"createTime"`
}
