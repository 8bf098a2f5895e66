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

var errInvalidMenuPayload = pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)

type MenuHandler struct {
	usecase usecase.IMenuUseCase
}

func NewMenuHandler(uc usecase.IMenuUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

func (h *MenuHandler) Create(c *gin.Context) {
	var payload request.MenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	menu, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMenu(menu))
}

func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.MenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, response.FromMenu(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	menu, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMenu(menu))
}

func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMenu):
		return pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMenuNotFound):
		return pkg.NewDomainErrorSimple("MENU_NOT_FOUND", "Menu not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
