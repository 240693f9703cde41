package validatorx

import (
	"fmt"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// crossFieldValidator is implemented by requests whose rules span several fields.
type crossFieldValidator interface {
	Validate() error
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator, then runs
// the struct's own Validate method when it has one.
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	if err := v.Struct(s); err != nil {
		return err
	}
	if cv, ok := s.(crossFieldValidator); ok {
		return cv.Validate()
	}
	return nil
}

// Describe flattens validation errors into "field: rule" pairs.
func Describe(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
