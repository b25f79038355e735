package request_models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules on gin's validator:
// "notblank" rejects whitespace-only strings and "verdict" restricts a value
// to the configured closed set, ignoring case.
func RegisterValidators(verdicts []string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}

	allowed := make(map[string]struct{}, len(verdicts))
	for _, verdict := range verdicts {
		allowed[strings.ToLower(verdict)] = struct{}{}
	}

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		return fmt.Errorf("register notblank: %w", err)
	}

	if err := v.RegisterValidation("verdict", func(fl validator.FieldLevel) bool {
		_, ok := allowed[strings.ToLower(fl.Field().String())]
		return ok
	}); err != nil {
		return fmt.Errorf("register verdict: %w", err)
	}

	return nil
}

// BindingErrorDetail turns a binding error into a short client-facing message.
func BindingErrorDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fe.Field()+" is required")
		case "verdict":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a recognised verdict", fe.Field(), fe.Value()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s violates %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
