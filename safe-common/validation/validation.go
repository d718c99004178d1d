package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"safe-rescue/safe-common/errs"

	"github.com/go-playground/validator/v10"
)

var (
	validate     = newValidator()
	phonePattern = regexp.MustCompile(`^[0-9]{8,9}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates the struct tags of v; a nil pointer is an invalid argument
func Struct(v any) error {
	if v == nil {
		return errs.Invalid("request body is required")
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return errs.Invalid("request body is required")
	}
	return translate(validate.Struct(v))
}

// StructExcept validates v skipping the named Go fields; used when a field is filled in
// later in the same operation
func StructExcept(v any, fields ...string) error {
	if v == nil {
		return errs.Invalid("request body is required")
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return errs.Invalid("request body is required")
	}
	return translate(validate.StructExcept(v, fields...))
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Invalid("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errs.Invalid("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "telefono":
		return fmt.Sprintf("%s must have 8 or 9 digits", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// RequireID rejects non-positive identifiers
func RequireID(field string, id int64) error {
	if id <= 0 {
		return errs.Invalid("%s is required", field)
	}
	return nil
}
