package invite

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
	prefixInviteCacheKey = "cache:invite"
	CollectionName       = "invites"
)

type IMongoMapper interface {
	Insert(ctx context.Context, invite *Invite) error
	FindOne(ctx context.Context, id string) (*Invite, error)
	FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Invite, error)
	FindByAssignmentIDAndUsername(ctx context.Context, assignmentID, username string) (*Invite, error)
	FindByUsername(ctx context.Context, username string) ([]*Invite, error)
	CountByAssignmentID(ctx context.Context, assignmentID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	if config.Mongo.URL == "" {
		log.Info("NewInviteMongoMapper: mongo not configured, collection: %s", CollectionName)
		return &MongoMapper{}
	}
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, invite *Invite) error {
	if m.conn == nil {
		return consts.ErrDatabaseNotConfigured
	}
	if invite.ID.IsZero() {
		invite.ID = primitive.NewObjectID()
		invite.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, invite)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Invite, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	var i Invite
	err = m.conn.FindOneNoCache(ctx, &i, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &i, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Invite, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	var invites []*Invite
	err := m.conn.Find(ctx, &invites, bson.M{consts.AssignmentID: assignmentID})
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// FindByAssignmentIDAndUsername 查重用: 同一作业同一用户最多一条邀请
func (m *MongoMapper) FindByAssignmentIDAndUsername(ctx context.Context, assignmentID, username string) (*Invite, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	var i Invite
	err := m.conn.FindOneNoCache(ctx, &i, bson.M{
		consts.AssignmentID:   assignmentID,
		consts.GithubUsername: username,
	})
	switch {
	case err == nil:
		return &i, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByUsername(ctx context.Context, username string) ([]*Invite, error) {
	if m.conn == nil {
		return nil, consts.ErrDatabaseNotConfigured
	}
	var invites []*Invite
	err := m.conn.Find(ctx, &invites, bson.M{consts.GithubUsername: username})
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (m *MongoMapper) CountByAssignmentID(ctx context.Context, assignmentID string) (int64, error) {
	if m.conn == nil {
		return 0, consts.ErrDatabaseNotConfigured
	}
	return m.conn.CountDocuments(ctx, bson.M{consts.AssignmentID: assignmentID})
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
