package libraryfile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"sidc-converter/internal/diagnostic"
)

// ErrInvalidDocument is returned when a library document fails validation.
var ErrInvalidDocument = errors.New("invalid library document")

// documentValidate checks struct tags, reporting fields by their YAML names.
var documentValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks doc against its struct tags. Cross-references between
// nodes are checked later, when the library is indexed.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	diags := Check(doc)
	if !diags.HasErrors() {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidDocument, diags.Error())
}

// Check returns one error diagnostic per failed field constraint.
func Check(doc *Document) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	err := documentValidate.Struct(doc)
	if err == nil {
		return diags
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		diags.AddError("invalid_document", err.Error(), "", "")
		return diags
	}

	for _, fe := range fieldErrs {
		diags.AddError("invalid_field", describe(fe), fieldPath(fe.Namespace()), "")
	}

	return diags
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}

	return rest
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	case "len":
		return fmt.Sprintf("must be %s characters long", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
