package validation

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

func validateDate(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	if field.String() == "" {
		return true
	}
	_, err := time.Parse(DateLayout, field.String())
	return err == nil
}
