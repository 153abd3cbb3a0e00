package forms

import (
	"slices"

	v "github.com/Gobd/fieldvalidation"
)

// Built-in form names.
const (
	ContactForm      = "contact"
	TransferForm     = "transfer"
	CardTransferForm = "cardTransfer"
)

var builtin = map[string]func() v.RuleSet{
	ContactForm:      Contact,
	TransferForm:     Transfer,
	CardTransferForm: CardTransfer,
}

// Contact is the rule set for creating a saved contact.
func Contact() v.RuleSet {
	return v.MustRuleSet(
		v.Field("name", v.Required, v.Length(2, 50)),
		Email("email"),
		Phone("phone"),
		AccountNumber("accountNumber"),
	)
}

// Transfer is the rule set for a transfer to another account.
func Transfer() v.RuleSet {
	return v.MustRuleSet(
		v.Field("recipientName", v.Required, v.MinLength(2)),
		AccountNumber("accountNumber"),
		Amount("amount"),
		v.Field("description", v.MaxLength(100)),
	)
}

// CardTransfer is the rule set for a quick transfer to a card.
func CardTransfer() v.RuleSet {
	return v.MustRuleSet(
		CardNumber("cardNumber"),
		Amount("amount"),
	)
}

// Lookup returns a fresh copy of the built-in form called name.
func Lookup(name string) (v.RuleSet, bool) {
	f, ok := builtin[name]
	if !ok {
		return v.RuleSet{}, false
	}
	return f(), true
}

// Names returns the built-in form names sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Customs returns the preset custom checks keyed by the names rule files
// use to reference them.
func Customs() map[string]v.CustomFunc {
	return map[string]v.CustomFunc{
		"email":         CheckEmail,
		"password":      CheckPassword,
		"phone":         CheckPhone,
		"amount":        CheckAmount,
		"cardNumber":    CheckCardNumber,
		"accountNumber": CheckAccountNumber,
	}
}
