package lineevent

import (
	"context"
	"time"

	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixLineEventCacheKey = "cache:line_event"
	CollectionName          = "line_events"
)

type IMongoMapper interface {
	Insert(ctx context.Context, event *LineEvent) error
	FindByAssignmentID(ctx context.Context, assignmentID string) ([]*LineEvent, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	if config.Mongo.URL == "" {
		log.Info("NewLineEventMongoMapper: mongo not configured, collection: %s", CollectionName)
		return &MongoMapper{}
	}
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, event *LineEvent) error {
	if m.conn == nil {
		return consts.ErrDatabaseNotConfigured
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
		event.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, event)
	return err
}

func (m *MongoMapper) FindByAssignmentID(ctx context.Context, assignmentID string) ([]*LineEvent, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	var events []*LineEvent
	err := m.conn.Find(ctx, &events, bson.M{consts.AssignmentID: assignmentID})
	if err != nil {
		return nil, err
	}
	return events, nil
}
