package forms

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	v "github.com/Gobd/fieldvalidation"
)

// AmountLimit is the largest amount a single transfer may move.
const AmountLimit = 10000

var (
	emailRegexp         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp         = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)
	cardNumberRegexp    = regexp.MustCompile(`^\d{4}\s?\d{4}\s?\d{4}\s?\d{4}$`)
	accountNumberRegexp = regexp.MustCompile(`^\d{10,16}$`)
)

// Email requires an address of the form local@domain.tld.
func Email(name string) *v.FieldRules {
	return v.Field(name,
		v.Required,
		v.Pattern(emailRegexp),
		v.Custom(CheckEmail, "must contain @"),
		v.Example("alex@example.com"),
	)
}

// Password requires at least 8 characters mixing upper case, lower case and digits.
func Password(name string) *v.FieldRules {
	return v.Field(name,
		v.Required,
		v.MinLength(8),
		v.Custom(CheckPassword, "must contain uppercase, lowercase, and number"),
	)
}

// Phone accepts optional phone numbers with at least 10 digits.
func Phone(name string) *v.FieldRules {
	return v.Field(name,
		v.Pattern(phoneRegexp),
		v.Custom(CheckPhone, "at least 10 digits"),
		v.Example("+1 (555) 123-4567"),
	)
}

// Amount requires a positive amount no greater than AmountLimit.
func Amount(name string) *v.FieldRules {
	return v.Field(name,
		v.Required,
		v.Min(0.01),
		v.Custom(CheckAmount, "maximum "+formatCurrency(AmountLimit)+" per transaction"),
		v.Example("50.00"),
	)
}

// CardNumber requires 16 digits, optionally grouped in fours by spaces.
func CardNumber(name string) *v.FieldRules {
	return v.Field(name,
		v.Required,
		v.Pattern(cardNumberRegexp),
		v.Custom(CheckCardNumber, "16 digits"),
		v.Example("4111 1111 1111 1111"),
	)
}

// AccountNumber requires 10 to 16 digits.
func AccountNumber(name string) *v.FieldRules {
	return v.Field(name,
		v.Required,
		v.Pattern(accountNumberRegexp),
		v.Custom(CheckAccountNumber, "10-16 digits"),
	)
}

// CheckEmail rejects values without an @.
func CheckEmail(value any) string {
	s := v.String(value)
	if s != "" && !strings.Contains(s, "@") {
		return "Please enter a valid email address"
	}
	return ""
}

// CheckPassword requires at least one upper case letter, one lower case
// letter and one digit.
func CheckPassword(value any) string {
	s := v.String(value)
	if s == "" {
		return ""
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return "Password must contain uppercase, lowercase, and number"
	}
	return ""
}

// CheckPhone requires at least 10 digits once formatting is stripped.
func CheckPhone(value any) string {
	s := v.String(value)
	if s != "" && len(govalidator.WhiteList(s, "0-9")) < 10 {
		return "Please enter a valid phone number"
	}
	return ""
}

// CheckAmount rejects amounts that are not numbers or exceed AmountLimit.
func CheckAmount(value any) string {
	f, ok := v.Float(value)
	if !ok {
		return "Please enter a valid amount"
	}
	if f > AmountLimit {
		return "Amount cannot exceed " + formatCurrency(AmountLimit)
	}
	return ""
}

// CheckCardNumber requires exactly 16 digits once spaces are removed.
func CheckCardNumber(value any) string {
	cleaned := strings.Join(strings.Fields(v.String(value)), "")
	if len(cleaned) != 16 {
		return "Card number must be 16 digits"
	}
	return ""
}

// CheckAccountNumber requires 10 to 16 characters.
func CheckAccountNumber(value any) string {
	s := v.String(value)
	if s != "" && (len(s) < 10 || len(s) > 16) {
		return "Account number must be 10-16 digits"
	}
	return ""
}

var printer = message.NewPrinter(language.English)

// formatCurrency renders a dollar amount with grouping, e.g. $10,000.
func formatCurrency(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}
