package http

import (
	"github.com/gin-gonic/gin"

	"arogyaai/internal/triage"
	"arogyaai/pkg/log"
)

// Handler is the public interface for the triage HTTP delivery layer.
type Handler interface {
	Send(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc triage.UseCase
}

// New creates a new HTTP handler for the triage domain.
func New(l log.Logger, uc triage.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
