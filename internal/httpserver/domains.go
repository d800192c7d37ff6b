package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	depHTTP "taskboard-api/internal/dependency/delivery/http"
	depRepo "taskboard-api/internal/dependency/repository/postgre"
	depUC "taskboard-api/internal/dependency/usecase"
	"taskboard-api/internal/middleware"
	notifHTTP "taskboard-api/internal/notification/delivery/http"
	notifRepo "taskboard-api/internal/notification/repository/postgre"
	notifUC "taskboard-api/internal/notification/usecase"
	taskHTTP "taskboard-api/internal/task/delivery/http"
	taskRepo "taskboard-api/internal/task/repository/postgre"
	taskUC "taskboard-api/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern followed for every domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	edges := depRepo.New(srv.postgresDB, srv.l)

	uc := taskUC.New(repo, edges, srv.sink, srv.calendar, srv.calendarID, srv.l)

	h := taskHTTP.New(srv.l, uc)

	// Registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupDependencyDomain initializes the dependency domain and registers its routes.
func (srv HTTPServer) setupDependencyDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := depRepo.New(srv.postgresDB, srv.l)
	tasks := taskRepo.New(srv.postgresDB, srv.l)

	uc := depUC.New(repo, tasks, srv.sink, srv.l)

	h := depHTTP.New(srv.l, uc)

	// Registers /api/v1/dependencies
	depHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dependency domain registered")
	return nil
}

// setupNotificationDomain initializes the notification domain and registers its routes.
func (srv HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := notifRepo.New(srv.postgresDB, srv.l)

	uc := notifUC.New(repo, srv.l)

	h := notifHTTP.New(srv.l, uc)

	// Registers /api/v1/notifications
	notifHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Notification domain registered")
	return nil
}
