package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/resp"
)

const msgMissingField = "Required field is missing."

// fail maps the service error taxonomy onto the response envelope:
// validation → 400, not found → 404, anything else → 500.
func fail(c *gin.Context, err error) {
	var nf *apperr.NotFoundError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		resp.BadRequest(c, msgMissingField)
	case errors.As(err, &nf):
		resp.NotFound(c, nf.Object)
	default:
		resp.ServerError(c, err)
	}
}
