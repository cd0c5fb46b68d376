package validation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"category_admin/internal/domain"

	"github.com/go-playground/validator/v10"
)

type scopeKey struct{}

// uniquenessScope is what the unique_name tag compares a name against.
type uniquenessScope struct {
	categories []domain.Category
	excludeID  int
}

// messages holds the user-facing text for a field/tag pair.
var messages = map[string]string{
	"name.required":        "Name is required",
	"name.max":             "Name must be smaller",
	"name.unique_name":     domain.MsgCategoryExists,
	"description.required": "Description is required",
	"description.max":      "Description must be smaller",
	"image.required":       "Image URL is required",
	"image.absurl":         "Invalid URL format",
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("absurl", isAbsoluteURL)
	_ = v.RegisterValidationCtx("unique_name", isUniqueName)

	return &Validator{validate: v}
}

// IsDuplicate reports whether another category already uses name, ignoring
// case. excludeID is the record being edited; 0 excludes nothing.
func IsDuplicate(name string, categories []domain.Category, excludeID int) bool {
	for _, c := range categories {
		if excludeID != 0 && c.ID == excludeID {
			continue
		}
		if strings.ToLower(c.Name) == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// ValidateCategory checks input against the field rules and against the
// names already present in existing. On failure it returns a
// *domain.ValidationError with one message per failing field.
func (v *Validator) ValidateCategory(input domain.CategoryInput, existing []domain.Category, excludeID int) error {
	ctx := context.WithValue(context.Background(), scopeKey{}, uniquenessScope{
		categories: existing,
		excludeID:  excludeID,
	})
	return v.toValidationError(v.validate.StructCtx(ctx, input))
}

// ValidateStruct checks any tagged request struct, such as the account forms.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.toValidationError(v.validate.Struct(s))
}

func (v *Validator) toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	verr := &domain.ValidationError{}
	for _, fe := range validationErrors {
		verr.Fields = append(verr.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: formatFieldError(fe),
		})
	}
	return verr
}

func formatFieldError(e validator.FieldError) string {
	if msg, ok := messages[e.Field()+"."+e.Tag()]; ok {
		return msg
	}

	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// isAbsoluteURL requires at least a scheme and a host.
func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isUniqueName(ctx context.Context, fl validator.FieldLevel) bool {
	scope, ok := ctx.Value(scopeKey{}).(uniquenessScope)
	if !ok {
		return true
	}
	return !IsDuplicate(fl.Field().String(), scope.categories, scope.excludeID)
}
