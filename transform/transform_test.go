package transform_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/transform"
)

func input() v.Values {
	return v.Values{
		"email":      "  Alex@Example.COM ",
		"cardNumber": " 4111 1111\t1111 1111 ",
		"amount":     json.Number("12.50"),
		"agree":      true,
		"note":       nil,
	}
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name string
		fn   func(v.Values) v.Values
		want v.Values
	}{
		{
			name: "trim space",
			fn:   transform.TrimSpace,
			want: v.Values{
				"email":      "Alex@Example.COM",
				"cardNumber": "4111 1111\t1111 1111",
				"amount":     json.Number("12.50"),
				"agree":      true,
				"note":       nil,
			},
		},
		{
			name: "to lower",
			fn:   transform.ToLower,
			want: v.Values{
				"email":      "  alex@example.com ",
				"cardNumber": " 4111 1111\t1111 1111 ",
				"amount":     json.Number("12.50"),
				"agree":      true,
				"note":       nil,
			},
		},
		{
			name: "strip spaces",
			fn:   transform.StripSpaces("cardNumber", "amount", "missing"),
			want: v.Values{
				"email":      "  Alex@Example.COM ",
				"cardNumber": "4111111111111111",
				"amount":     json.Number("12.50"),
				"agree":      true,
				"note":       nil,
			},
		},
		{
			name: "multi",
			fn: func(values v.Values) v.Values {
				return transform.Multi(values, transform.TrimSpace, transform.ToLower, transform.StripSpaces("cardNumber"))
			},
			want: v.Values{
				"email":      "alex@example.com",
				"cardNumber": "4111111111111111",
				"amount":     json.Number("12.50"),
				"agree":      true,
				"note":       nil,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input()
			got := tt.fn(in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, input(), in, "input must not be modified")
		})
	}
}

func TestStringFunc(t *testing.T) {
	got := transform.StringFunc(v.Values{"a": "x", "b": 1}, func(s string) string { return strings.Repeat(s, 3) })
	assert.Equal(t, v.Values{"a": "xxx", "b": 1}, got)
}

func TestMultiNil(t *testing.T) {
	assert.Equal(t, v.Values{}, transform.Multi(nil))
	assert.Equal(t, v.Values{}, transform.TrimSpace(nil))
}

func TestTrimBeforeValidate(t *testing.T) {
	rules := v.MustRuleSet(v.Field("code", v.Required, v.Length(4, 4)))
	values := v.Values{"code": " 1234 "}

	assert.Equal(t, "code must not exceed 4 characters", rules.Validate(values)["code"])
	assert.Empty(t, rules.Validate(transform.TrimSpace(values)))
}
