package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pageza/diethub/backend/internal/types"
)

var registerOnce sync.Once

// fieldLabels are the human names used in violation messages.
var fieldLabels = map[string]string{
	"userId": "User ID",
	"age":    "Age",
	"height": "Height",
	"weight": "Weight",
	"name":   "Name",
}

// RegisterValidators configures gin's validator to report json field names
// and adds the notblank rule. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

// bindJSON decodes the body into req, writing a 400 response and returning
// false when it is malformed or fails validation.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, types.ValidationErrorResponse{
			Error:      "validation failed",
			Violations: violations(verrs),
		})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	return false
}

func violations(verrs validator.ValidationErrors) []types.Violation {
	out := make([]types.Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, types.Violation{Field: fe.Field(), Message: violationMessage(fe)})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "min", "gt":
		return label + " must be positive"
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}
