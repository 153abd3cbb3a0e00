package fieldvalidation_test

import (
	"fmt"

	v "github.com/Gobd/fieldvalidation"
)

var userRules = v.MustRuleSet(
	v.Field("name", v.Required, v.Length(1, 100)),
	v.Field("email", v.Required),
	v.Field("age", v.Min(0), v.Max(150)),
)

func ExampleRuleSet_Validate() {
	errs := userRules.Validate(v.Values{"name": "Alice", "email": "alice@example.com", "age": 30})
	fmt.Println(len(errs) == 0)
	// Output: true
}

func ExampleRuleSet_Validate_error() {
	errs := userRules.Validate(v.Values{"age": "-1"})
	fmt.Println(errs.Err())
	// Output: age: age must be at least 0; email: email is required; name: name is required.
}

func ExampleValidator_FieldDisplay() {
	form := v.New(userRules)

	form.ValidateSingleField("name", "")
	fmt.Printf("%+v\n", form.FieldDisplay("name"))

	form.MarkTouched("name")
	fmt.Printf("%+v\n", form.FieldDisplay("name"))
	// Output:
	// {Error: HasError:false}
	// {Error:name is required HasError:true}
}

func ExampleKindOf() {
	err := userRules.Check("age", "abc")
	fmt.Println(v.KindOf(err))
	fmt.Println(err)
	// Output:
	// not-a-number
	// age must be a valid number
}
