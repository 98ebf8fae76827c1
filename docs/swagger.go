package docs

import "github.com/swaggo/swag"

// @title           TaskHub API
// @version         1.0
// @description     API for managing workspaces, projects, task lists, tasks and team collaboration
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@taskhub.dev

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration and authentication

// @tag.name Workspaces
// @tag.description Workspace and membership management

// @tag.name Projects
// @tag.description Project management operations

// @tag.name Lists
// @tag.description Task list management operations

// @tag.name Tasks
// @tag.description Task management operations

// @tag.name Notifications
// @tag.description In-app notification operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	spec, _ := swag.GetSwagger(swag.Name).(*swag.Spec)
	return spec
}
