package handler

import (
	"context"
	"errors"
	"net/http"

	"lello/internal/model"
	"lello/internal/permission"
	"lello/internal/repository"
	"lello/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CardHandler struct {
	resource
}

func NewCardHandler(svc *service.Service, grants permission.GrantStore, log *zap.Logger) *CardHandler {
	return &CardHandler{resource{
		svc:  svc,
		perm: permission.NewEvaluator(permission.CardConfig, grants),
		log:  log,
	}}
}

// CardRequest creates a card. Hours accept a JSON number or string with at
// most two decimal places.
type CardRequest struct {
	ListID         string          `json:"list_id" binding:"required,uuid"`
	Title          string          `json:"title" binding:"required,max=255"`
	Description    string          `json:"description"`
	Number         *int            `json:"number"`
	HoursEstimated decimal.Decimal `json:"hours_estimated" swaggertype:"string"`
	HoursDone      decimal.Decimal `json:"hours_done" swaggertype:"string"`
}

type UpdateCardRequest struct {
	ListID         *string          `json:"list_id" binding:"omitempty,uuid"`
	Title          *string          `json:"title" binding:"omitempty,max=255"`
	Description    *string          `json:"description"`
	Number         *int             `json:"number"`
	HoursEstimated *decimal.Decimal `json:"hours_estimated" swaggertype:"string"`
	HoursDone      *decimal.Decimal `json:"hours_done" swaggertype:"string"`
}

type ChecklistRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type ElementRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *CardHandler) load(c *gin.Context, action permission.Action) (*model.Card, bool) {
	id, ok := parseID(c, "id", "card")
	if !ok {
		return nil, false
	}
	card, err := h.svc.GetCard(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if !h.allowInstance(c, action, card.ID) {
		return nil, false
	}
	return card, true
}

// Create godoc
// @Summary      Create a card in a list
// @Description  Notifies the board owner and adds an event to the board calendar.
// @Tags         Cards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        card  body      CardRequest  true  "Card"
// @Success      201   {object}  CardResponse
// @Router       /cards/ [post]
func (h *CardHandler) Create(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionCreate) {
		return
	}

	var req CardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.svc.CreateCard(c.Request.Context(), principal(c).ID, service.CardAttrs{
		ListID:         uuid.MustParse(req.ListID),
		Title:          req.Title,
		Description:    req.Description,
		Number:         req.Number,
		HoursEstimated: req.HoursEstimated,
		HoursDone:      req.HoursDone,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCardResponse(card))
}

// GetAll godoc
// @Summary      List every card with labels and assignees
// @Tags         Cards
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  CardResponse
// @Router       /cards/ [get]
func (h *CardHandler) GetAll(c *gin.Context) {
	if !h.allowCollection(c, permission.ActionList) {
		return
	}

	cards, err := h.svc.Cards(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(cards, newCardResponse))
}

// GetByID godoc
// @Summary      Get a card
// @Tags         Cards
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  CardResponse
// @Router       /cards/{id}/ [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	card, ok := h.load(c, permission.ActionRetrieve)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// Update godoc
// @Summary      Update a card or move it to another list of the same board
// @Tags         Cards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Card ID"
// @Param        card  body      UpdateCardRequest  true  "Fields to change"
// @Success      200   {object}  CardResponse
// @Router       /cards/{id}/ [put]
func (h *CardHandler) Update(c *gin.Context) {
	card, ok := h.load(c, updateAction(c))
	if !ok {
		return
	}

	var req UpdateCardRequest
	if !bindJSON(c, &req) {
		return
	}
	patch := service.CardPatch{
		Title:          req.Title,
		Description:    req.Description,
		Number:         req.Number,
		HoursEstimated: req.HoursEstimated,
		HoursDone:      req.HoursDone,
	}
	if req.ListID != nil {
		listID := uuid.MustParse(*req.ListID)
		patch.ListID = &listID
	}

	card, err := h.svc.UpdateCard(c.Request.Context(), principal(c).ID, card.ID, patch, c.Request.Method)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// Delete godoc
// @Summary      Delete a card
// @Tags         Cards
// @Security     BearerAuth
// @Param        id  path  string  true  "Card ID"
// @Success      204
// @Router       /cards/{id}/ [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "card")
	if !ok {
		return
	}
	card, err := h.svc.GetCard(c.Request.Context(), id)
	if errors.Is(err, repository.ErrCardNotFound) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !h.allowInstance(c, permission.ActionDestroy, card.ID) {
		return
	}

	if err := h.svc.DestroyCard(c.Request.Context(), principal(c).ID, card.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Checklist godoc
// @Summary      Checklist of a card
// @Description  Answers an empty object when the card has no checklist.
// @Tags         Cards
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  ChecklistResponse
// @Router       /cards/{id}/checklist [get]
func (h *CardHandler) Checklist(c *gin.Context) {
	card, ok := h.load(c, permission.ActionChecklist)
	if !ok {
		return
	}

	checklist, err := h.svc.ChecklistOfCard(c.Request.Context(), card.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if checklist == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, newChecklistResponse(checklist))
}

// SetChecklist godoc
// @Summary      Create or rename the checklist of a card
// @Tags         Cards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id         path      string            true  "Card ID"
// @Param        checklist  body      ChecklistRequest  true  "Checklist"
// @Success      200        {object}  ChecklistResponse
// @Router       /cards/{id}/checklist [put]
func (h *CardHandler) SetChecklist(c *gin.Context) {
	card, ok := h.load(c, permission.ActionChecklist)
	if !ok {
		return
	}

	var req ChecklistRequest
	if !bindJSON(c, &req) {
		return
	}

	checklist, err := h.svc.SetChecklist(c.Request.Context(), card.ID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newChecklistResponse(checklist))
}

// AddElement godoc
// @Summary      Append an element to the card's checklist
// @Tags         Cards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Card ID"
// @Param        element  body      ElementRequest  true  "Element"
// @Success      201      {object}  ElementResponse
// @Router       /cards/{id}/checklist/elements [post]
func (h *CardHandler) AddElement(c *gin.Context) {
	card, ok := h.load(c, permission.ActionChecklist)
	if !ok {
		return
	}

	var req ElementRequest
	if !bindJSON(c, &req) {
		return
	}

	element, err := h.svc.AddElement(c.Request.Context(), card.ID, req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newElementResponse(element))
}

// AddLabel godoc
// @Summary      Put a label on a card
// @Tags         Cards
// @Security     BearerAuth
// @Param        id        path  string  true  "Card ID"
// @Param        label_id  path  string  true  "Label ID"
// @Success      204
// @Router       /cards/{id}/labels/{label_id} [post]
func (h *CardHandler) AddLabel(c *gin.Context) {
	h.changeLinks(c, "label_id", "label", h.svc.AttachLabel)
}

// RemoveLabel godoc
// @Summary      Take a label off a card
// @Tags         Cards
// @Security     BearerAuth
// @Param        id        path  string  true  "Card ID"
// @Param        label_id  path  string  true  "Label ID"
// @Success      204
// @Router       /cards/{id}/labels/{label_id} [delete]
func (h *CardHandler) RemoveLabel(c *gin.Context) {
	h.changeLinks(c, "label_id", "label", h.svc.DetachLabel)
}

// AssignUser godoc
// @Summary      Assign a user to a card
// @Tags         Cards
// @Security     BearerAuth
// @Param        id       path  string  true  "Card ID"
// @Param        user_id  path  string  true  "User ID"
// @Success      204
// @Router       /cards/{id}/assignees/{user_id} [post]
func (h *CardHandler) AssignUser(c *gin.Context) {
	h.changeLinks(c, "user_id", "user", h.svc.AssignUser)
}

// UnassignUser godoc
// @Summary      Remove a user from a card's assignees
// @Tags         Cards
// @Security     BearerAuth
// @Param        id       path  string  true  "Card ID"
// @Param        user_id  path  string  true  "User ID"
// @Success      204
// @Router       /cards/{id}/assignees/{user_id} [delete]
func (h *CardHandler) UnassignUser(c *gin.Context) {
	h.changeLinks(c, "user_id", "user", h.svc.UnassignUser)
}

func (h *CardHandler) changeLinks(c *gin.Context, param, what string, change func(ctx context.Context, actor, cardID, otherID uuid.UUID) error) {
	card, ok := h.load(c, permission.ActionUpdate)
	if !ok {
		return
	}
	otherID, ok := parseID(c, param, what)
	if !ok {
		return
	}

	if err := change(c.Request.Context(), principal(c).ID, card.ID, otherID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
