package dto

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyIdentifier accepts ISO codes, symbols and localized currency names,
// rejecting blank or absurdly long identifiers before they reach resolution.
func currencyIdentifier(fl validator.FieldLevel) bool {
	id := strings.TrimSpace(fl.Field().String())
	return id != "" && len(id) <= 32
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencyid", currencyIdentifier)
	}
}
