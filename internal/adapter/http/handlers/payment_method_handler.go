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

var errInvalidPaymentMethodPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD_INPUT", "Invalid payment method payload", http.StatusBadRequest)

type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{usecase: uc}
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentMethodPayload.HTTPStatus, errInvalidPaymentMethodPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPaymentMethodPayload.HTTPStatus, errInvalidPaymentMethodPayload.ToHTTPError())
		return
	}

	method, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentMethod(method))
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	methods, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, response.FromPaymentMethod(m))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PaymentMethodHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	method, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethod(method))
}

func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentMethodPayload.HTTPStatus, errInvalidPaymentMethodPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPaymentMethodPayload.HTTPStatus, errInvalidPaymentMethodPayload.ToHTTPError())
		return
	}

	method, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethod(method))
}

func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPaymentMethodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD_INPUT", "Invalid payment method payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
