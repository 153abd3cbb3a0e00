package openapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/fieldvalidation/forms"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/Gobd/fieldvalidation/ruleconfig"
)

func TestNewRequest_NoRuleSets(t *testing.T) {
	_, err := openapi.NewRequest()
	require.Error(t, err)
}

func TestNewRequest_OneOf(t *testing.T) {
	body, err := openapi.NewRequest(forms.Transfer(), forms.CardTransfer())
	require.NoError(t, err)

	schema := body.Value.Content["application/json"].Schema.Value
	assert.Len(t, schema.OneOf, 2)
}

func TestNewRequest_Single(t *testing.T) {
	body, err := openapi.NewRequest(forms.CardTransfer())
	require.NoError(t, err)

	schema := body.Value.Content["application/json"].Schema.Value
	assert.Empty(t, schema.OneOf)
	assert.ElementsMatch(t, []string{"cardNumber", "amount"}, schema.Required)
}

func TestNewResponse_NoValues(t *testing.T) {
	_, err := openapi.NewResponse(nil)
	require.Error(t, err)
}

func TestFormsDoc(t *testing.T) {
	store := ruleconfig.NewStore()
	for _, name := range forms.Names() {
		rules, _ := forms.Lookup(name)
		require.NoError(t, store.Add(name, rules))
	}

	doc, err := openapi.FormsDoc("forms", "1.0.0", store)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	require.NotNil(t, doc.Paths.Value("/forms").Get)
	for _, name := range forms.Names() {
		validate := doc.Paths.Value("/forms/" + name + "/validate")
		require.NotNil(t, validate, name)
		require.NotNil(t, validate.Post.RequestBody)
		assert.NotNil(t, validate.Post.Responses.Value("404"))

		field := doc.Paths.Value("/forms/" + name + "/fields/{field}/validate")
		require.NotNil(t, field, name)
		require.Len(t, field.Post.Parameters, 1)
		assert.Equal(t, "field", field.Post.Parameters[0].Value.Name)
	}

	amount := doc.Paths.Value("/forms/transfer/validate").Post.RequestBody.Value.
		Content["application/json"].Schema.Value.Properties["amount"].Value
	require.NotNil(t, amount.Min)
	assert.Equal(t, 0.01, *amount.Min)
}

func TestFormsDoc_Empty(t *testing.T) {
	doc, err := openapi.FormsDoc("forms", "1.0.0", ruleconfig.NewStore())
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Paths.Len())
}
