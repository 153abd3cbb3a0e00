// Command example walks a transfer form through the lifecycle a form UI
// drives: validate on submit, show errors only for touched fields, fix one
// field at a time and reset.
//
// Run:
//
//	go run ./_example
package main

import (
	"fmt"

	"go.uber.org/zap"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/forms"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	form := v.New(forms.Transfer(), v.WithLogger(logger))

	values := v.Values{
		"recipientName": "A",
		"accountNumber": "12345",
		"amount":        "25000",
	}

	errs, ok := form.ValidateForm(values)
	fmt.Printf("submit: valid=%t\n", ok)
	for _, name := range errs.Fields() {
		fmt.Printf("  %s: %s\n", name, errs.Get(name))
	}

	// Nothing is shown until the user has visited a field.
	fmt.Printf("amount before touch: %+v\n", form.FieldDisplay("amount"))
	form.MarkTouched("amount")
	fmt.Printf("amount after touch:  %+v\n", form.FieldDisplay("amount"))

	values["amount"] = "250"
	form.ValidateSingleField("amount", values["amount"])
	fmt.Printf("amount after fix:    %+v\n", form.FieldDisplay("amount"))

	form.Reset()
	fmt.Printf("after reset: errors=%d touched=%t\n", len(form.Errors()), form.Touched("amount"))
}
