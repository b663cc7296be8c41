package provider

import (
	"clearcode-server/biz/application/service"
	"clearcode-server/biz/infrastructure/config"
	"clearcode-server/biz/infrastructure/repository/assignment"
	"clearcode-server/biz/infrastructure/repository/classroom"
	"clearcode-server/biz/infrastructure/repository/invite"
	"clearcode-server/biz/infrastructure/repository/lineevent"
	"clearcode-server/biz/infrastructure/util"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	ClassroomService  service.IClassroomService
	AssignmentService service.IAssignmentService
	InviteService     service.IInviteService
	ExtensionService  service.IExtensionService
	GithubService     service.IGithubService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.ClassroomServiceSet,
	service.AssignmentServiceSet,
	service.InviteServiceSet,
	service.ExtensionServiceSet,
	service.GithubServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	util.NewGithubClient,
	classroom.NewMongoMapper,
	wire.Bind(new(classroom.IMongoMapper), new(*classroom.MongoMapper)),
	assignment.NewMongoMapper,
	wire.Bind(new(assignment.IMongoMapper), new(*assignment.MongoMapper)),
	invite.NewMongoMapper,
	wire.Bind(new(invite.IMongoMapper), new(*invite.MongoMapper)),
	lineevent.NewMongoMapper,
	wire.Bind(new(lineevent.IMongoMapper), new(*lineevent.MongoMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
