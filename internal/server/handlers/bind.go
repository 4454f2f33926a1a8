package handlers

import (
	stderrors "errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/webimagedrive/gallery/internal/apperr"
)

// bindJSON decodes the request body into req and maps validation failures to
// the structured error taxonomy: absent required fields become MissingField,
// everything else InvalidInput.
func bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		if e.Tag() == "required" {
			return apperr.MissingField(toSnakeCase(e.Field()))
		}
		return apperr.InvalidInput(toSnakeCase(e.Field()) + " is invalid")
	}
	return apperr.InvalidInput("malformed request body").WithCause(err)
}

// toSnakeCase converts CamelCase field names to snake_case.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
