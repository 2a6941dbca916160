package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// MessageHandler handles direct messages and in-app notifications.
type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Subject     string `json:"subject"      validate:"max=200"`
	Body        string `json:"body"         validate:"required,max=8000"`
}

// Send delivers a direct message to another active user.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.messages.Send(c.Request().Context(), principal(c), ports.SendMessageInput{
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, msg)
}

// ListMessages returns the caller's sent and received messages, newest first.
//
// @Summary      List own messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum messages returned"
// @Success      200  {array}   domain.Message
// @Router       /v1/messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	msgs, err := h.messages.ListMessages(c.Request().Context(), principal(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// MarkMessageRead marks a received message as read.
//
// @Summary      Mark a message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Message id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/messages/{id}/read [post]
func (h *MessageHandler) MarkMessageRead(c echo.Context) error {
	if err := h.messages.MarkMessageRead(c.Request().Context(), principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "read"})
}

// ListNotifications returns the caller's notifications, newest first.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum notifications returned"
// @Success      200  {array}   domain.Notification
// @Router       /v1/notifications [get]
func (h *MessageHandler) ListNotifications(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.messages.ListNotifications(c.Request().Context(), principal(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// MarkNotificationRead marks one of the caller's notifications as read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Notification id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/notifications/{id}/read [post]
func (h *MessageHandler) MarkNotificationRead(c echo.Context) error {
	if err := h.messages.MarkNotificationRead(c.Request().Context(), principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "read"})
}
