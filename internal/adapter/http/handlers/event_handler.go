package handlers

import (
	"errors"
	"net/http"

	request "github.com/ceccimesquita/papillon/internal/adapter/http/dto/request"
	response "github.com/ceccimesquita/papillon/internal/adapter/http/dto/response"
	"github.com/ceccimesquita/papillon/internal/usecase"
	"github.com/ceccimesquita/papillon/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)

// EventHandler handles HTTP requests for events.
type EventHandler struct {
	usecase usecase.IEventUseCase
}

func NewEventHandler(uc usecase.IEventUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

func (h *EventHandler) Create(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEvent(event))
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, response.FromEvent(e))
	}
	c.JSON(http.StatusOK, out)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	event, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(event))
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(event))
}

func (h *EventHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.EventStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ChangeStatus(c.Request.Context(), id, payload.Status); err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent):
		return pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
