package utils

import (
	"regexp"
	"time"

	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("date_iso", validateDateISO)
	validate.RegisterValidation("phone", validatePhoneNumber)
	validate.RegisterValidation("slug", validateSlug)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateClockTime(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexClockTimeHHMM).MatchString(fl.Field().String())
}

func validateDateISO(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateLayoutISO, value)
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexPhoneNumberGeneral).MatchString(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexBookingSlug).MatchString(fl.Field().String())
}
