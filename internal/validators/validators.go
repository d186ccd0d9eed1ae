package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9\s\-+()]+$`)
)

// IsEmail is a loose local@domain.tld check; no DNS lookups.
func IsEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// New returns a validator with the salon rules registered and field names
// reported by their json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("email_loose", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Messages maps "field.tag" (or just "field", or "*.tag") to the message
// returned to the caller.
type Messages map[string]string

// Translate turns the first validation failure into a validation error with
// a human readable message.
func Translate(err error, msgs Messages) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return httperr.ErrValidation("invalid_request", "invalid request")
	}

	fe := verrs[0]
	for _, key := range []string{fe.Field() + "." + fe.Tag(), fe.Field(), "*." + fe.Tag()} {
		if msg, ok := msgs[key]; ok {
			return httperr.ErrValidation("invalid_"+fe.Field(), msg)
		}
	}

	return httperr.ErrValidation(
		"invalid_"+fe.Field(),
		fmt.Sprintf("field %s failed on the '%s' rule", fe.Field(), fe.Tag()),
	)
}
