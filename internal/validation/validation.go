package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance configured to report
// JSON field names, so validation messages match what clients sent.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(useJSONFieldNames)
	return &Validator{validate: v}
}

// Validate checks struct tags and flattens the first violation into a
// client-facing message.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("missing required field '%s'", fe.Field())
		case "min", "max":
			return fmt.Errorf("value of field '%s' is not in the expected range", fe.Field())
		}
		return fmt.Errorf("invalid value for field '%s'", fe.Field())
	}
	return err
}

func useJSONFieldNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
