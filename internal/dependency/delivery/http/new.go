package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dependency"
	"taskboard-api/pkg/log"
)

// Handler is the public interface for the dependency HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	ListForTask(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Validate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc dependency.UseCase
}

// New creates a new HTTP handler for the dependency domain.
func New(l log.Logger, uc dependency.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
