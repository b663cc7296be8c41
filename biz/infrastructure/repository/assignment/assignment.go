package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	// CreatedAt/DueDate 由前端传入的字符串时间戳, dueDate 作为排序键
	CreatedAt    string    `bson:"created_at" json:"createdAt"`
	DueDate      string    `bson:"due_date" json:"dueDate"`
	IsGroup      bool      `bson:"is_group" json:"isGroup"`
	MaxGroupSize *int64    `bson:"max_group_size" json:"maxGroupSize"`
	Groups       []any     `bson:"groups" json:"groups"`
	CreateTime   time.Time `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time `bson:"update_time" json:"updateTime"`
}
