package request

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var nationalIDPattern = regexp.MustCompile(`^[0-9]{16}$`)

// RegisterCustomValidators installs the domain binding rules on gin's
// validator engine. Call once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("natid", func(fl validator.FieldLevel) bool {
			return nationalIDPattern.MatchString(fl.Field().String())
		})
	}
}
