package service

import (
	"context"
	"testing"

	"clearcode-server/biz/adaptor"
	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/repository/assignment"
	"clearcode-server/biz/infrastructure/repository/classroom"
	"clearcode-server/biz/infrastructure/repository/invite"
	"clearcode-server/biz/infrastructure/repository/lineevent"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authedContext 构造带可解码 token 的请求上下文, 走未验签兜底路径
func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	config.SetConfig(&config.Config{
		State: consts.StateTest,
		Auth:  config.Auth{DevSkipTokenVerify: true},
	})
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", "Bearer "+tok)
	return adaptor.InjectContext(context.Background(), c)
}

// anonContext 无 Authorization 头的请求上下文
func anonContext() context.Context {
	return adaptor.InjectContext(context.Background(), app.NewContext(0))
}

type fakeClassroomMapper struct {
	store map[string]*classroom.Classroom
	// findOneErr 模拟存储故障 (非 not-found)
	findOneErr error
}

func newFakeClassroomMapper() *fakeClassroomMapper {
	return &fakeClassroomMapper{store: map[string]*classroom.Classroom{}}
}

func (f *fakeClassroomMapper) Insert(_ context.Context, c *classroom.Classroom) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.store[c.ID.Hex()] = c
	return nil
}

func (f *fakeClassroomMapper) FindOne(_ context.Context, id string) (*classroom.Classroom, error) {
	if f.findOneErr != nil {
		return nil, f.findOneErr
	}
	c, ok := f.store[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (f *fakeClassroomMapper) FindByUser(_ context.Context, userID string) ([]*classroom.Classroom, error) {
	var out []*classroom.Classroom
	for _, c := range f.store {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClassroomMapper) UpdateFields(_ context.Context, id string, fields bson.M) error {
	c, ok := f.store[id]
	if !ok {
		return consts.ErrNotFound
	}
	if v, ok := fields[consts.Name]; ok {
		c.Name = v.(string)
	}
	if v, ok := fields[consts.Description]; ok {
		c.Description = v.(string)
	}
	if v, ok := fields[consts.Students]; ok {
		c.Students = v.([]any)
	}
	return nil
}

func (f *fakeClassroomMapper) Delete(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

type fakeAssignmentMapper struct {
	store map[string]*assignment.Assignment
	// findOneErr 模拟存储故障 (非 not-found)
	findOneErr error
}

func newFakeAssignmentMapper() *fakeAssignmentMapper {
	return &fakeAssignmentMapper{store: map[string]*assignment.Assignment{}}
}

func (f *fakeAssignmentMapper) Insert(_ context.Context, a *assignment.Assignment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.store[a.ID.Hex()] = a
	return nil
}

func (f *fakeAssignmentMapper) FindOne(_ context.Context, id string) (*assignment.Assignment, error) {
	if f.findOneErr != nil {
		return nil, f.findOneErr
	}
	a, ok := f.store[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return a, nil
}

func (f *fakeAssignmentMapper) FindByUser(_ context.Context, userID string) ([]*assignment.Assignment, error) {
	var out []*assignment.Assignment
	for _, a := range f.store {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentMapper) UpdateFields(_ context.Context, id string, fields bson.M) error {
	a, ok := f.store[id]
	if !ok {
		return consts.ErrNotFound
	}
	if v, ok := fields[consts.Name]; ok {
		a.Name = v.(string)
	}
	if v, ok := fields[consts.Description]; ok {
		a.Description = v.(string)
	}
	if v, ok := fields[consts.DueDate]; ok {
		a.DueDate = v.(string)
	}
	if v, ok := fields[consts.MaxGroupSize]; ok {
		if v == nil {
			a.MaxGroupSize = nil
		} else {
			size := v.(int64)
			a.MaxGroupSize = &size
		}
	}
	if v, ok := fields[consts.Groups]; ok {
		a.Groups = v.([]any)
	}
	return nil
}

func (f *fakeAssignmentMapper) Delete(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

type fakeInviteMapper struct {
	store map[string]*invite.Invite
}

func newFakeInviteMapper() *fakeInviteMapper {
	return &fakeInviteMapper{store: map[string]*invite.Invite{}}
}

func (f *fakeInviteMapper) Insert(_ context.Context, i *invite.Invite) error {
	if i.ID.IsZero() {
		i.ID = primitive.NewObjectID()
	}
	f.store[i.ID.Hex()] = i
	return nil
}

func (f *fakeInviteMapper) FindOne(_ context.Context, id string) (*invite.Invite, error) {
	i, ok := f.store[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return i, nil
}

func (f *fakeInviteMapper) FindByAssignmentID(_ context.Context, assignmentID string) ([]*invite.Invite, error) {
	var out []*invite.Invite
	for _, i := range f.store {
		if i.AssignmentID == assignmentID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInviteMapper) FindByAssignmentIDAndUsername(_ context.Context, assignmentID, username string) (*invite.Invite, error) {
	for _, i := range f.store {
		if i.AssignmentID == assignmentID && i.GithubUsername == username {
			return i, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (f *fakeInviteMapper) FindByUsername(_ context.Context, username string) ([]*invite.Invite, error) {
	var out []*invite.Invite
	for _, i := range f.store {
		if i.GithubUsername == username {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInviteMapper) CountByAssignmentID(_ context.Context, assignmentID string) (int64, error) {
	var n int64
	for _, i := range f.store {
		if i.AssignmentID == assignmentID {
			n++
		}
	}
	return n, nil
}

func (f *fakeInviteMapper) Delete(_ context.Context, id string) error {
	delete(f.store, id)
	return nil
}

type fakeLineEventMapper struct {
	store []*lineevent.LineEvent
}

func newFakeLineEventMapper() *fakeLineEventMapper {
	return &fakeLineEventMapper{}
}

func (f *fakeLineEventMapper) Insert(_ context.Context, e *lineevent.LineEvent) error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	f.store = append(f.store, e)
	return nil
}

func (f *fakeLineEventMapper) FindByAssignmentID(_ context.Context, assignmentID string) ([]*lineevent.LineEvent, error) {
	var out []*lineevent.LineEvent
	for _, e := range f.store {
		if e.AssignmentID == assignmentID {
			out = append(out, e)
		}
	}
	return out, nil
}
