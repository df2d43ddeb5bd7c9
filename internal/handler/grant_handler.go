package handler

import (
	"net/http"

	"lello/internal/model"
	"lello/internal/permission"
	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GrantHandler shares board capabilities with other users. Every route is
// gated by the share_board capability on the board.
type GrantHandler struct {
	resource
}

func NewGrantHandler(svc *service.Service, grants permission.GrantStore, log *zap.Logger) *GrantHandler {
	return &GrantHandler{resource{
		svc:  svc,
		perm: permission.NewEvaluator(permission.BoardConfig, grants),
		log:  log,
	}}
}

type ShareBoardRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Capability string `json:"capability" binding:"required,oneof=change_board delete_board share_board"`
}

func (h *GrantHandler) board(c *gin.Context) (*model.Board, bool) {
	id, ok := parseID(c, "id", "board")
	if !ok {
		return nil, false
	}
	board, err := h.svc.GetBoard(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if !h.allowInstance(c, permission.ActionGrants, board.ID) {
		return nil, false
	}
	return board, true
}

// ShareBoard godoc
// @Summary      Grant a board capability to a user found by email
// @Tags         Board Sharing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id     path      string             true  "Board ID"
// @Param        share  body      ShareBoardRequest  true  "Grant"
// @Success      201    {object}  GrantResponse
// @Router       /boards/{id}/grants [post]
func (h *GrantHandler) ShareBoard(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	var req ShareBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.svc.ShareBoard(c.Request.Context(), board.ID, req.Email, model.Capability(req.Capability))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, GrantResponse{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Capability: req.Capability,
	})
}

// RemoveShare godoc
// @Summary      Revoke every capability a user holds over the board
// @Tags         Board Sharing
// @Security     BearerAuth
// @Param        id       path  string  true  "Board ID"
// @Param        user_id  path  string  true  "User ID"
// @Success      204
// @Router       /boards/{id}/grants/{user_id} [delete]
func (h *GrantHandler) RemoveShare(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id", "user")
	if !ok {
		return
	}

	if err := h.svc.RevokeShare(c.Request.Context(), board.ID, userID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBoardShares godoc
// @Summary      Capabilities granted over the board
// @Tags         Board Sharing
// @Security     BearerAuth
// @Produce      json
// @Param        id   path   string  true  "Board ID"
// @Success      200  {array}  GrantResponse
// @Router       /boards/{id}/grants [get]
func (h *GrantHandler) GetBoardShares(c *gin.Context) {
	board, ok := h.board(c)
	if !ok {
		return
	}

	grants, err := h.svc.Grants(c.Request.Context(), board.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response := make([]GrantResponse, 0, len(grants))
	for _, g := range grants {
		response = append(response, GrantResponse{
			UserID:     g.UserID,
			Email:      g.User.Email,
			Name:       g.User.Name,
			Capability: string(g.Capability),
		})
	}
	c.JSON(http.StatusOK, response)
}
