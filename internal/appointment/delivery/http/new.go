package http

import (
	"github.com/gin-gonic/gin"

	"tailortalk/internal/appointment"
	pkgLog "tailortalk/pkg/log"
)

// Handler is the public interface for the appointment HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ListEvents(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc appointment.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new appointment HTTP handler.
func New(l pkgLog.Logger, uc appointment.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
