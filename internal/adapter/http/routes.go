package http

import (
	"boardhub/internal/adapter/http/handlers"
	"boardhub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Boards       *handlers.BoardHandler
	Tasks        *handlers.TaskHandler
	Lists        *handlers.ListHandler
	Invitations  *handlers.InvitationHandler
	Notification *handlers.NotificationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/report", h.Health.CheckHealthReport)

	authed := api.Group("")
	authed.Use(middleware.PrincipalMiddleware())
	{
		authed.POST("/boards", h.Boards.CreateBoard)
		authed.GET("/boards", h.Boards.ListBoards)
		authed.GET("/boards/:id", h.Boards.GetBoard)
		authed.PATCH("/boards/:id", h.Boards.UpdateBoard)
		authed.DELETE("/boards/:id", h.Boards.DeleteBoard)
		authed.DELETE("/boards/:id/members/:userId", h.Boards.RemoveMember)

		authed.POST("/boards/:id/tasks", h.Tasks.CreateTask)
		authed.GET("/boards/:id/tasks", h.Tasks.ListBoardTasks)
		authed.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		authed.PUT("/tasks/:id/assignee", h.Tasks.AssignTask)
		authed.PUT("/tasks/:id/list", h.Tasks.ChangeTaskList)
		authed.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		authed.POST("/boards/:id/lists", h.Lists.CreateList)
		authed.GET("/boards/:id/lists", h.Lists.ListBoardLists)
		authed.PATCH("/lists/:id", h.Lists.UpdateList)
		authed.DELETE("/lists/:id", h.Lists.DeleteList)

		authed.POST("/boards/:id/invitations", h.Invitations.CreateInvitation)
		authed.GET("/boards/:id/invitations", h.Invitations.ListBoardInvitations)
		authed.GET("/invitations", h.Invitations.ListMyInvitations)
		authed.POST("/invitations/:id/respond", h.Invitations.RespondInvitation)

		authed.GET("/notifications", h.Notification.ListMyNotifications)
		authed.POST("/notifications/:id/read", h.Notification.MarkRead)
	}
}
