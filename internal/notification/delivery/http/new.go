package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/notification"
	"taskboard-api/pkg/log"
)

// Handler is the public interface for the notification HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	MarkRead(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
