package service

import (
	"regexp"
	"strings"

	v10 "github.com/go-playground/validator/v10"

	"postcode_nl/platform/apperr"
	"postcode_nl/platform/validator"
	"postcode_nl/postcode/transport"
)

// Dutch postcode: four digits not starting at zero, at most one space, two
// letters. Leading and trailing whitespace is rejected, not trimmed.
var postcodePattern = regexp.MustCompile(`^[1-9][0-9]{3} ?[A-Za-z]{2}$`)

var (
	// ErrInvalidPostcode is returned for inputs not formatted as 1234AB or 1234 AB.
	ErrInvalidPostcode = apperr.Validation("postcode must be formatted as 1234AB or 1234 AB")
	// ErrInvalidHouseNumber is returned for house numbers outside 1-99999.
	ErrInvalidHouseNumber = apperr.Validation("house number must be between 1 and 99999")
)

var validate = newLookupValidator()

func newLookupValidator() *validator.Validator {
	val := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = val.RegisterValidation("nl_postcode", func(fl v10.FieldLevel) bool {
		return postcodePattern.MatchString(fl.Field().String())
	})
	return val
}

// ValidateLookup checks a lookup request and reports the offending field.
// Pure: no side effects, no I/O.
func ValidateLookup(req transport.LookupRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	for _, fieldErr := range validator.FieldErrors(err) {
		switch fieldErr.Field() {
		case "Postcode":
			return ErrInvalidPostcode
		case "HouseNumber":
			return ErrInvalidHouseNumber
		}
	}

	return apperr.Wrap(apperr.KindValidation, "invalid lookup request", err)
}

// CanonicalPostcode validates s and returns the canonical 1234AB form.
func CanonicalPostcode(s string) (string, error) {
	if err := validate.Var(s, "required,nl_postcode"); err != nil {
		return "", ErrInvalidPostcode
	}
	return canonicalize(s), nil
}

// ValidateHouseNumber checks that n is within the range the API accepts.
func ValidateHouseNumber(n int) error {
	if err := validate.Var(n, "required,min=1,max=99999"); err != nil {
		return ErrInvalidHouseNumber
	}
	return nil
}

// canonicalize strips the optional internal space and upper-cases the letters.
// The input must already be validated.
func canonicalize(postcode string) string {
	return strings.ToUpper(strings.Replace(postcode, " ", "", 1))
}
