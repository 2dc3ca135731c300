package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"go-sitepass/internal/shared/phone"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var compactDate = regexp.MustCompile(`^[0-9]{8}$`)

// Init wires the gin validator: json tag names in messages plus the custom
// rules used by request DTOs.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("krmobile", func(fl validator.FieldLevel) bool {
			return phone.IsValid(phone.Normalize(fl.Field().String()))
		})
		_ = v.RegisterValidation("yyyymmdd", func(fl validator.FieldLevel) bool {
			return compactDate.MatchString(fl.Field().String())
		})
	}
}
