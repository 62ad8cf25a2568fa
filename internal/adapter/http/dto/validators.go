package dto

import (
	"html"
	"reflect"
	"strings"

	"tokengated-music/internal/core/domain"
	"tokengated-music/pkg/ethsig"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_address", validateEthAddress)
		_ = v.RegisterValidation("chain", validateChain)
	}
}

// validateEthAddress accepts a 0x-prefixed 20-byte hex address in any case.
func validateEthAddress(fl validator.FieldLevel) bool {
	return ethsig.IsHexAddress(fl.Field().String())
}

// validateChain accepts a known chain name or a positive decimal chain id.
func validateChain(fl validator.FieldLevel) bool {
	_, err := domain.ParseChain(fl.Field().String())
	return err == nil
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer. Embedded structs are
// walked too.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Struct:
			sanitizeFields(f)
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
