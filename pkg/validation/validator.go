package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-ontology/pkg/records"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxNameLength bounds concept names and part-of-speech tags
	MaxNameLength = 200

	// Concept names may carry a namespace prefix ("ont::") but no whitespace
	namePattern = regexp.MustCompile(`^[^\s]+$`)
)

func init() {
	validate = validator.New()
}

// ValidateConcept checks the shape of an ontology record.
func ValidateConcept(rec *records.Concept) error {
	if rec == nil {
		return errors.New("concept record cannot be nil")
	}

	if err := validate.Struct(rec); err != nil {
		return formatValidationError(err)
	}

	if err := ValidateName(rec.Name); err != nil {
		return fmt.Errorf("Name: %w", err)
	}
	if rec.Parent != "" {
		if err := ValidateName(rec.Parent); err != nil {
			return fmt.Errorf("Parent: %w", err)
		}
	}

	for i, arg := range rec.Arguments {
		for j, term := range arg.Restrictions {
			if !isRestrictionTerm(term) {
				return fmt.Errorf("Arguments[%d].Restrictions[%d]: unsupported term type %T", i, j, term)
			}
		}
	}

	return nil
}

// ValidateLexicon checks the shape of a lexicon record.
func ValidateLexicon(rec *records.Lexicon) error {
	if rec == nil {
		return errors.New("lexicon record cannot be nil")
	}
	if err := validate.Struct(rec); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateSynset checks the shape of a sense-graph record.
func ValidateSynset(rec *records.Synset) error {
	if rec == nil {
		return errors.New("synset record cannot be nil")
	}
	if err := validate.Struct(rec); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateName validates a concept name
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name '%s' exceeds maximum length of %d characters", name, MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name '%s' contains whitespace", name)
	}
	return nil
}

// isRestrictionTerm accepts a name or a list of names, the two encodings the
// ontology export uses.
func isRestrictionTerm(term any) bool {
	switch v := term.(type) {
	case string, []string:
		return true
	case []any:
		for _, x := range v {
			if _, ok := x.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first failure with its namespaced field path
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must have at least %s elements", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
