package schemavalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/contentcatalog/pkg/types"
)

const nameRegex = `^[A-Za-z0-9_-]+$`

var (
	nameRe  = regexp.MustCompile(nameRegex)
	routeRe = regexp.MustCompile(`^[A-Za-z0-9_-]+(/[A-Za-z0-9_-]+)*$`)
	colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

var validKinds = []string{
	types.CatalogKind,
}

// kindValidator checks if the given kind is a valid resource kind.
func kindValidator(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	for _, validKind := range validKinds {
		if kind == validKind {
			return true
		}
	}
	return false
}

// nameFormatValidator checks if the given name is alphanumeric with underscores and hyphens.
func nameFormatValidator(fl validator.FieldLevel) bool {
	return nameRe.MatchString(fl.Field().String())
}

// routeTokenValidator accepts slash separated name segments, e.g. "observables/fromEvent".
func routeTokenValidator(fl validator.FieldLevel) bool {
	return routeRe.MatchString(fl.Field().String())
}

func colorValidator(fl validator.FieldLevel) bool {
	return colorRe.MatchString(fl.Field().String())
}

func schemeValidator(fl validator.FieldLevel) bool {
	return types.Scheme(fl.Field().String()).IsValid()
}

// classificationValidator accepts a level of any known scheme. Whether the
// level belongs to the store's scheme is checked when the store is built.
func classificationValidator(fl validator.FieldLevel) bool {
	_, ok := types.SchemeOf(types.Classification(fl.Field().String()))
	return ok
}

func ValidateObjectName(name string) bool {
	return nameRe.MatchString(name)
}

func ValidateRouteToken(token string) bool {
	return routeRe.MatchString(token)
}

func init() {
	V().RegisterValidation("kindValidator", kindValidator)
	V().RegisterValidation("nameFormatValidator", nameFormatValidator)
	V().RegisterValidation("routeTokenValidator", routeTokenValidator)
	V().RegisterValidation("colorValidator", colorValidator)
	V().RegisterValidation("schemeValidator", schemeValidator)
	V().RegisterValidation("classificationValidator", classificationValidator)
}
