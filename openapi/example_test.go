package openapi_test

import (
	"fmt"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
)

func ExamplePost() {
	doc := openapi.DocBase("Forms API", "Example API", "1.0.0")

	rules := v.MustRuleSet(
		v.Field("name", v.Required, v.Length(2, 50)),
	)
	_ = openapi.Post(doc, "/forms/contact/validate", "validateContact", openapi.Endpoint{
		Summary:  "Validate a contact",
		Request:  &rules,
		Response: openapi.FormResult{},
	})

	fmt.Println(doc.Paths.Value("/forms/contact/validate").Post.OperationID)
	// Output: validateContact
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleGet() {
	doc := openapi.DocBase("Forms API", "Example API", "1.0.0")

	_ = openapi.Get(doc, "/forms", "listForms", openapi.Endpoint{
		Summary:  "List all forms",
		Response: openapi.FormList{},
	})

	fmt.Println(doc.Paths.Value("/forms").Get.OperationID)
	// Output: listForms
}
