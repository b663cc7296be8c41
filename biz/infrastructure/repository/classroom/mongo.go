package classroom

import (
	"context"
	"errors"
	"time"

	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixClassroomCacheKey = "cache:classroom"
	CollectionName          = "classrooms"
)

type IMongoMapper interface {
	Insert(ctx context.Context, classroom *Classroom) error
	FindOne(ctx context.Context, id string) (*Classroom, error)
	FindByUser(ctx context.Context, userID string) ([]*Classroom, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	if config.Mongo.URL == "" {
		log.Info("NewClassroomMongoMapper: mongo not configured, collection: %s", CollectionName)
		return &MongoMapper{}
	}
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, classroom *Classroom) error {
	if m.conn == nil {
		return consts.ErrDatabaseNotConfigured
	}
	if classroom.ID.IsZero() {
		classroom.ID = primitive.NewObjectID()
		classroom.CreateTime = time.Now()
		classroom.UpdateTime = classroom.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, classroom)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Classroom, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	var c Classroom
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByUser(ctx context.Context, userID string) ([]*Classroom, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	var classrooms []*Classroom
	err := m.conn.Find(ctx, &classrooms, bson.M{consts.UserID: userID})
	if err != nil {
		return nil, err
	}
	return classrooms, nil
}

func (m *MongoMapper) UpdateFields(ctx context.Context, id string, fields bson.M) error {
	if m.conn == nil {
		return consts.ErrDatabaseNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrNotFound
	}
	fields["update_time"] = time.Now()
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$set": fields})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	if m.conn == nil {
		return consts.ErrDatabaseNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrNotFound
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
