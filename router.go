package main

import (
	"context"

	"clearcode-server/biz/adaptor/controller"
	"clearcode-server/biz/infrastructure/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	prefix := config.GetConfig().ApiPrefix

	r.GET("/ping", controller.Ping)
	r.GET("/", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, utils.H{"message": "Server running", "api": prefix})
	})

	// 版本化API路由 - 前端与 VSCode 扩展共用同一面
	apiV1 := r.Group(prefix)
	{
		health := apiV1.Group("/health")
		health.GET("", controller.Health)
		health.GET("/", controller.Health)
		health.GET("/ready", controller.Ready)

		github := apiV1.Group("/github")
		github.GET("/search/users", controller.SearchUsers)
		github.GET("/users/:username", controller.GetUser)

		classrooms := apiV1.Group("/classrooms")
		classrooms.GET("", controller.ListClassrooms)
		classrooms.POST("", controller.CreateClassroom)
		classrooms.GET("/:id", controller.GetClassroom)
		classrooms.PATCH("/:id", controller.UpdateClassroom)
		classrooms.DELETE("/:id", controller.DeleteClassroom)

		assignments := apiV1.Group("/assignments")
		assignments.GET("", controller.ListAssignments)
		assignments.POST("", controller.CreateAssignment)
		// 扩展端公开接口, 必须先于 :id 的语义存在 (静态段优先匹配)
		assignments.GET("/user/:githubUsername", controller.AssignmentsForUser)
		assignments.GET("/by-github-id", controller.AssignmentsByGithubId)
		assignments.POST("/push", controller.PushLineEvent)
		assignments.GET("/:id", controller.GetAssignment)
		assignments.PATCH("/:id", controller.UpdateAssignment)
		assignments.DELETE("/:id", controller.DeleteAssignment)
		assignments.GET("/:id/invited", controller.ListInvited)
		assignments.POST("/:id/invite", controller.CreateInvite)
		assignments.DELETE("/:id/invite/:inviteId", controller.DeleteInvite)
		assignments.GET("/:id/progress", controller.GetProgress)
	}
}
