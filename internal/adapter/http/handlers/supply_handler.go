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

var errInvalidSupplyPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLY_INPUT", "Invalid supply payload", http.StatusBadRequest)

// SupplyHandler handles HTTP requests for event supplies. Every mutation
// also refreshes the owning event's expenses and profit.
type SupplyHandler struct {
	usecase usecase.ISupplyUseCase
}

func NewSupplyHandler(uc usecase.ISupplyUseCase) *SupplyHandler {
	return &SupplyHandler{usecase: uc}
}

func (h *SupplyHandler) Create(c *gin.Context) {
	var payload request.SupplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplyPayload.HTTPStatus, errInvalidSupplyPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidSupplyPayload.HTTPStatus, errInvalidSupplyPayload.ToHTTPError())
		return
	}

	supply, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSupply(supply))
}

func (h *SupplyHandler) List(c *gin.Context) {
	supplies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.SupplyResponse, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, response.FromSupply(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *SupplyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	supply, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupply(supply))
}

// ListByEvent returns the supplies of a single event.
func (h *SupplyHandler) ListByEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	supplies, err := h.usecase.ListByEvent(c.Request.Context(), id)
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.SupplyResponse, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, response.FromSupply(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *SupplyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.SupplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplyPayload.HTTPStatus, errInvalidSupplyPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidSupplyPayload.HTTPStatus, errInvalidSupplyPayload.ToHTTPError())
		return
	}

	supply, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupply(supply))
}

func (h *SupplyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapSupplyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapSupplyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupply):
		return pkg.NewDomainErrorSimple("INVALID_SUPPLY_INPUT", "Invalid supply payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplyNotFound):
		return pkg.NewDomainErrorSimple("SUPPLY_NOT_FOUND", "Supply not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
