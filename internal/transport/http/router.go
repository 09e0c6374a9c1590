package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/handlers"
	mwauth "github.com/THANH290803/companyName/internal/middleware/auth"
)

type Deps struct {
	DB *gorm.DB

	Gate *mwauth.Gate

	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	RoleHandler           *handlers.RoleHandler
	CompanyHandler        *handlers.CompanyHandler
	DepartmentHandler     *handlers.DepartmentHandler
	TeamHandler           *handlers.TeamHandler
	ProjectHandler        *handlers.ProjectHandler
	TaskStatusHandler     *handlers.TaskStatusHandler
	ApprovalStatusHandler *handlers.ApprovalStatusHandler
	TaskStageHandler      *handlers.TaskStageHandler
	TaskHandler           *handlers.TaskHandler
	TaskPermissionHandler *handlers.TaskPermissionHandler
	TaskMessageHandler    *handlers.TaskMessageHandler
	SearchHandler         *handlers.SearchHandler
}

// Register mounts the API. Registration and login are the only open
// routes; everything else sits behind the auth gate. Task-scoped
// authorization happens inside the task, permission and message handlers
// through authz.Require.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.POST("/user/register", d.AuthHandler.Register)
	api.POST("/user/login", d.AuthHandler.Login)

	private := api.Group("", d.Gate.RequireAuth)

	user := private.Group("/user")
	user.GET("", d.UserHandler.GetUsers)
	user.GET("/:id", d.UserHandler.GetUser)
	user.PUT("/:id", d.UserHandler.UpdateUser)
	user.DELETE("/:id", d.UserHandler.DeleteUser)

	role := private.Group("/role")
	role.GET("", d.RoleHandler.GetRoles)
	role.POST("", d.RoleHandler.CreateRole)
	role.GET("/:id", d.RoleHandler.GetRole)
	role.PUT("/:id", d.RoleHandler.UpdateRole)
	role.DELETE("/:id", d.RoleHandler.DeleteRole)

	company := private.Group("/company")
	company.GET("", d.CompanyHandler.GetCompanies)
	company.POST("", d.CompanyHandler.CreateCompany)
	company.GET("/:id", d.CompanyHandler.GetCompany)
	company.PUT("/:id", d.CompanyHandler.UpdateCompany)
	company.DELETE("/:id", d.CompanyHandler.DeleteCompany)

	department := private.Group("/department")
	department.GET("", d.DepartmentHandler.GetDepartments)
	department.POST("", d.DepartmentHandler.CreateDepartment)
	department.GET("/:id", d.DepartmentHandler.GetDepartment)
	department.PUT("/:id", d.DepartmentHandler.UpdateDepartment)
	department.DELETE("/:id", d.DepartmentHandler.DeleteDepartment)

	team := private.Group("/team")
	team.GET("", d.TeamHandler.GetTeams)
	team.POST("", d.TeamHandler.CreateTeam)
	team.GET("/:id", d.TeamHandler.GetTeam)
	team.PUT("/:id", d.TeamHandler.UpdateTeam)
	team.DELETE("/:id", d.TeamHandler.DeleteTeam)

	project := private.Group("/project")
	project.GET("", d.ProjectHandler.GetProjects)
	project.POST("", d.ProjectHandler.CreateProject)
	project.GET("/:id", d.ProjectHandler.GetProject)
	project.PUT("/:id", d.ProjectHandler.UpdateProject)
	project.DELETE("/:id", d.ProjectHandler.DeleteProject)

	taskStatus := private.Group("/task-status")
	taskStatus.GET("", d.TaskStatusHandler.GetStatuses)
	taskStatus.POST("", d.TaskStatusHandler.CreateStatus)
	taskStatus.GET("/:id", d.TaskStatusHandler.GetStatus)
	taskStatus.PUT("/:id", d.TaskStatusHandler.UpdateStatus)
	taskStatus.DELETE("/:id", d.TaskStatusHandler.DeleteStatus)

	approvalStatus := private.Group("/task-approval-status")
	approvalStatus.GET("", d.ApprovalStatusHandler.GetStatuses)
	approvalStatus.POST("", d.ApprovalStatusHandler.CreateStatus)
	approvalStatus.GET("/:id", d.ApprovalStatusHandler.GetStatus)
	approvalStatus.PUT("/:id", d.ApprovalStatusHandler.UpdateStatus)
	approvalStatus.DELETE("/:id", d.ApprovalStatusHandler.DeleteStatus)

	taskStage := private.Group("/task-stage")
	taskStage.GET("", d.TaskStageHandler.GetStages)
	taskStage.POST("", d.TaskStageHandler.CreateStage)
	taskStage.GET("/:id", d.TaskStageHandler.GetStage)
	taskStage.PUT("/:id", d.TaskStageHandler.UpdateStage)
	taskStage.DELETE("/:id", d.TaskStageHandler.DeleteStage)

	task := private.Group("/task")
	task.GET("", d.TaskHandler.GetTasks)
	task.POST("", d.TaskHandler.CreateTask)
	task.GET("/filter/:status_id/:stage_id", d.TaskHandler.FilterTasks)
	task.GET("/:id", d.TaskHandler.GetTask)
	task.PUT("/:id", d.TaskHandler.UpdateTask)
	task.DELETE("/:id", d.TaskHandler.DeleteTask)

	taskPermission := private.Group("/task-permission")
	taskPermission.GET("", d.TaskPermissionHandler.GetPermissions)
	taskPermission.POST("", d.TaskPermissionHandler.GrantPermission)
	taskPermission.GET("/:id", d.TaskPermissionHandler.GetPermission)
	taskPermission.DELETE("/:id", d.TaskPermissionHandler.RevokePermission)

	taskMessage := private.Group("/task-message")
	taskMessage.GET("", d.TaskMessageHandler.GetMessages)
	taskMessage.POST("", d.TaskMessageHandler.CreateMessage)
	taskMessage.GET("/:id", d.TaskMessageHandler.GetMessage)
	taskMessage.DELETE("/:id", d.TaskMessageHandler.DeleteMessage)

	if d.SearchHandler != nil {
		private.GET("/search", d.SearchHandler.Search)
	}
}
