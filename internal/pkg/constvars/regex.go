package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexClockTimeHHMM                = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexBookingSlug                  = `^[a-z0-9]+(?:-[a-z0-9]+)*$`
	RegexPhoneNumberGeneral           = `^\+?[1-9]\d{6,14}$`
)
