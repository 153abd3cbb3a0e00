package fieldvalidation

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// String returns the string form of a field value. Nil and nil pointers
// become "". Floats use their shortest decimal representation.
func String(value any) string {
	value, isNil := validation.Indirect(value)
	if isNil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

// Float coerces a field value to a number. It reports false for nil,
// booleans, NaN, infinities and strings that are not entirely numeric.
func Float(value any) (float64, bool) {
	value, isNil := validation.Indirect(value)
	if isNil {
		return 0, false
	}
	switch v := value.(type) {
	case string:
		return parseFloat(v)
	case json.Number:
		return parseFloat(v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case reflect.String:
		return parseFloat(rv.String())
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !govalidator.IsFloat(s) {
		return 0, false
	}
	f, err := govalidator.ToFloat(s)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// isBlank drives the required check: nil, "" and whitespace-only strings.
func isBlank(value any) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return strings.TrimSpace(rv.String()) == ""
	}
	return false
}

// isEmpty drives the optional-field short circuit. Whitespace-only strings
// are not empty and go on to the remaining checks.
func isEmpty(value any) bool {
	value, isNil := validation.Indirect(value)
	if isNil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
