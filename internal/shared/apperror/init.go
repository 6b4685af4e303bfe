package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var codiceFiscalePattern = regexp.MustCompile(`^[A-Z0-9]{16}$`)

// Init hooks custom behaviour into gin's validator: error messages use the
// json field name, and the codicefiscale tag is available on binding structs.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Italian tax code: 16 uppercase alphanumerics. Input is upper-cased
	// by the services before persisting, so validate case-insensitively.
	_ = v.RegisterValidation("codicefiscale", func(fl validator.FieldLevel) bool {
		return codiceFiscalePattern.MatchString(strings.ToUpper(fl.Field().String()))
	})
}
