package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub/internal/config"
	"taskhub/internal/handler"
	"taskhub/internal/middleware"
	"taskhub/internal/repository"
	"taskhub/internal/scheduler"
	"taskhub/internal/service"
	"taskhub/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine   *gin.Engine
	DB       *gorm.DB
	Config   *config.Config
	Reminder *scheduler.Reminder
}

func Init(cfg *config.Config) (*Server, error) {
	if err := runMigrations(cfg); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Migrations applied")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	memberRepo := repository.NewWorkspaceUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	listRepo := repository.NewTaskListRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	subtaskRepo := repository.NewSubtaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	fileStore := storage.NewLocalStore(cfg.UploadDir)

	// Services
	authSvc := service.NewAuthService(userRepo)
	workspaceSvc := service.NewWorkspaceService(workspaceRepo, memberRepo, userRepo, activityRepo, notificationRepo)
	projectSvc := service.NewProjectService(projectRepo, workspaceRepo, activityRepo)
	listSvc := service.NewTaskListService(listRepo, projectRepo, activityRepo)
	taskSvc := service.NewTaskService(taskRepo, listRepo, userRepo, activityRepo, notificationRepo)
	subtaskSvc := service.NewSubtaskService(subtaskRepo, taskRepo)
	commentSvc := service.NewCommentService(commentRepo, taskRepo, activityRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, taskRepo, activityRepo, fileStore)
	activitySvc := service.NewActivityService(activityRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)

	// Handlers
	jwtTTL := time.Duration(cfg.JWTExpiryHours) * time.Hour
	userHandler := handler.NewUserHandler(authSvc, cfg.JWTSecret, jwtTTL)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceSvc)
	projectHandler := handler.NewProjectHandler(projectSvc)
	listHandler := handler.NewTaskListHandler(listSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	subtaskHandler := handler.NewSubtaskHandler(subtaskSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	attachmentHandler := handler.NewAttachmentHandler(attachmentSvc, cfg.UploadDir)
	activityHandler := handler.NewActivityHandler(activitySvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Workspace routes
		authorized.POST("/workspaces", workspaceHandler.Create)
		authorized.GET("/workspaces", workspaceHandler.GetAll)
		authorized.GET("/workspaces/:id", workspaceHandler.GetByID)
		authorized.PUT("/workspaces/:id", workspaceHandler.Update)
		authorized.DELETE("/workspaces/:id", workspaceHandler.Delete)
		authorized.GET("/workspaces/:id/members", workspaceHandler.GetMembers)
		authorized.POST("/workspaces/:id/members", workspaceHandler.InviteMember)
		authorized.DELETE("/workspaces/:id/members/:member_id", workspaceHandler.RemoveMember)
		authorized.PUT("/workspaces/:id/members/:member_id/role", workspaceHandler.UpdateMemberRole)
		authorized.GET("/workspaces/:id/activity", activityHandler.ByWorkspace)
		authorized.GET("/workspaces/:id/projects", projectHandler.GetByWorkspace)

		// Project routes
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects/:id", projectHandler.GetByID)
		authorized.PUT("/projects/:id", projectHandler.Update)
		authorized.DELETE("/projects/:id", projectHandler.Delete)
		authorized.GET("/projects/:id/activity", activityHandler.ByProject)
		authorized.GET("/projects/:id/lists", listHandler.GetByProject)
		authorized.GET("/projects/:id/tasks", taskHandler.GetByProject)

		// List routes
		authorized.POST("/lists", listHandler.Create)
		authorized.GET("/lists/:id", listHandler.GetByID)
		authorized.PUT("/lists/:id", listHandler.Update)
		authorized.DELETE("/lists/:id", listHandler.Delete)
		authorized.GET("/lists/:id/tasks", taskHandler.GetByList)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.GET("/tasks/:id/activity", activityHandler.ByTask)
		authorized.GET("/me/tasks", taskHandler.GetMine)

		// AJAX-style task API
		authorized.POST("/api/tasks/:id/status", taskHandler.UpdateStatus)
		authorized.POST("/api/tasks/:id/priority", taskHandler.UpdatePriority)
		authorized.POST("/api/tasks/:id/assign", taskHandler.Assign)
		authorized.POST("/api/tasks/:id/move", taskHandler.Move)
		authorized.POST("/api/tasks/filter", taskHandler.Filter)
		authorized.GET("/api/tasks/stats/:project_id", taskHandler.Stats)
		authorized.POST("/api/tasks/bulk/status", taskHandler.BulkStatus)
		authorized.POST("/api/tasks/bulk/priority", taskHandler.BulkPriority)
		authorized.POST("/api/tasks/bulk/assign", taskHandler.BulkAssign)

		// Subtask routes
		authorized.POST("/api/subtasks", subtaskHandler.Create)
		authorized.POST("/api/subtasks/:id/toggle", subtaskHandler.Toggle)
		authorized.PUT("/api/subtasks/:id", subtaskHandler.Update)
		authorized.DELETE("/api/subtasks/:id", subtaskHandler.Delete)

		// Comment routes
		authorized.POST("/api/tasks/:id/comments", commentHandler.Create)
		authorized.GET("/api/tasks/:id/comments", commentHandler.GetByTask)
		authorized.PUT("/api/comments/:id", commentHandler.Update)
		authorized.DELETE("/api/comments/:id", commentHandler.Delete)

		// Attachment routes
		authorized.POST("/api/attachments", attachmentHandler.Upload)
		authorized.GET("/api/tasks/:id/attachments", attachmentHandler.GetByTask)
		authorized.GET("/api/attachments/:id/download", attachmentHandler.Download)
		authorized.DELETE("/api/attachments/:id", attachmentHandler.Delete)

		// Notification routes
		authorized.GET("/notifications", notificationHandler.GetAll)
		authorized.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		authorized.POST("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)
	}

	srv := &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}

	if cfg.ReminderCron != "" {
		reminder, err := scheduler.NewReminder(cfg.ReminderCron, taskRepo, notificationRepo)
		if err != nil {
			return nil, err
		}
		srv.Reminder = reminder
	}

	return srv, nil
}

func runMigrations(cfg *config.Config) error {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword),
		cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	m, err := migrate.New("file://"+cfg.MigrationsDir, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	if s.Reminder != nil {
		s.Reminder.Start()
		log.Println("⏰ Due-date reminder scheduled")
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	if s.Reminder != nil {
		s.Reminder.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
