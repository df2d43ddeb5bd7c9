package handler

import (
	"errors"
	"net/http"

	"lello/internal/middleware"
	"lello/internal/permission"
	"lello/internal/repository"
	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// resource holds what every board, list, card and label handler needs: the
// orchestrator, the evaluator for its resource type and a logger.
type resource struct {
	svc  *service.Service
	perm *permission.Evaluator
	log  *zap.Logger
}

func principal(c *gin.Context) permission.Principal {
	value, _ := c.Get(middleware.UserIDKey)
	userID, _ := value.(uuid.UUID)
	return permission.Principal{ID: userID}
}

func parseID(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func (r *resource) allowCollection(c *gin.Context, action permission.Action) bool {
	return r.decide(c, action, r.perm.Collection(c.Request.Context(), principal(c), action))
}

func (r *resource) allowInstance(c *gin.Context, action permission.Action, id uuid.UUID) bool {
	return r.decide(c, action, r.perm.Instance(c.Request.Context(), principal(c), action, id))
}

func (r *resource) decide(c *gin.Context, action permission.Action, d permission.Decision) bool {
	if d.Allowed {
		return true
	}

	message := "You do not have permission to perform this action"
	switch d.Reason {
	case permission.ReasonUnauthenticated:
		message = "Authentication credentials were not provided"
	case permission.ReasonUnavailable:
		message = "Failed to check permissions"
		r.log.Error("Permission check failed",
			zap.String("permission", r.perm.Name()),
			zap.String("action", string(action)),
			zap.Error(d.Err),
		)
	}
	c.JSON(d.Status(), gin.H{"error": message})
	return false
}

// fail writes the response for an error returned by the service layer.
func (r *resource) fail(c *gin.Context, err error) {
	respondError(c, r.log, err)
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCalendarMissing):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// updateAction tells PUT from PATCH; both reach the same handler.
func updateAction(c *gin.Context) permission.Action {
	if c.Request.Method == http.MethodPatch {
		return permission.ActionPartialUpdate
	}
	return permission.ActionUpdate
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return false
	}
	return true
}
