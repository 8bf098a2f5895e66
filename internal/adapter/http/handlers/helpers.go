package handlers

import (
	"net/http"
	"strconv"

	"github.com/ceccimesquita/papillon/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidID = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)

// parseIDParam reads the :id path parameter. On failure it writes the error
// response and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return uint(id), true
}
