package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gobd/fieldvalidation/forms"
	"github.com/Gobd/fieldvalidation/internal/server"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/Gobd/fieldvalidation/ruleconfig"
)

func catalog(t *testing.T) *ruleconfig.Store {
	t.Helper()
	store := ruleconfig.NewStore()
	for _, name := range forms.Names() {
		rules, _ := forms.Lookup(name)
		require.NoError(t, store.Add(name, rules))
	}
	return store
}

func newHandler(t *testing.T, opts server.Options) http.Handler {
	t.Helper()
	h, err := server.New(catalog(t), opts)
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListForms(t *testing.T) {
	h := newHandler(t, server.Options{})

	rec := do(t, h, http.MethodGet, "/forms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got openapi.FormList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []string{"cardTransfer", "contact", "transfer"}, got.Forms)
}

func TestValidateForm(t *testing.T) {
	h := newHandler(t, server.Options{})

	tests := []struct {
		name      string
		path      string
		body      string
		wantValid bool
		wantErrs  map[string]string
	}{
		{
			name:      "valid transfer",
			path:      "/forms/transfer/validate",
			body:      `{"recipientName":"Alex","accountNumber":"1234567890","amount":250}`,
			wantValid: true,
			wantErrs:  map[string]string{},
		},
		{
			name:      "empty transfer",
			path:      "/forms/transfer/validate",
			body:      `{}`,
			wantValid: false,
			wantErrs: map[string]string{
				"recipientName": "recipientName is required",
				"accountNumber": "accountNumber is required",
				"amount":        "amount is required",
			},
		},
		{
			name:      "amount over limit as json number",
			path:      "/forms/cardTransfer/validate",
			body:      `{"cardNumber":"4111 1111 1111 1111","amount":20000}`,
			wantValid: false,
			wantErrs:  map[string]string{"amount": "Amount cannot exceed $10,000"},
		},
		{
			name:      "amount not a number",
			path:      "/forms/cardTransfer/validate",
			body:      `{"cardNumber":"4111111111111111","amount":"abc"}`,
			wantValid: false,
			wantErrs:  map[string]string{"amount": "amount must be a valid number"},
		},
		{
			name:      "whitespace trimmed on request",
			path:      "/forms/transfer/validate?trim=true",
			body:      `{"recipientName":"  ","accountNumber":" 1234567890 ","amount":"5"}`,
			wantValid: false,
			wantErrs:  map[string]string{"recipientName": "recipientName is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got openapi.FormResult
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantErrs, got.Errors)
		})
	}
}

func TestValidateFormLenient(t *testing.T) {
	h := newHandler(t, server.Options{LenientNumbers: true})

	rec := do(t, h, http.MethodPost, "/forms/cardTransfer/validate",
		`{"cardNumber":"4111111111111111","amount":"abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got openapi.FormResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, map[string]string{"amount": "Please enter a valid amount"}, got.Errors)
}

func TestValidateField(t *testing.T) {
	h := newHandler(t, server.Options{})

	tests := []struct {
		name string
		path string
		body string
		want openapi.FieldResult
	}{
		{
			name: "too short",
			path: "/forms/contact/fields/name/validate",
			body: `{"value":"A"}`,
			want: openapi.FieldResult{Field: "name", Error: "name must be at least 2 characters", Kind: "too-short"},
		},
		{
			name: "valid",
			path: "/forms/contact/fields/email/validate",
			body: `{"value":"alex@example.com"}`,
			want: openapi.FieldResult{Field: "email", Valid: true},
		},
		{
			name: "optional empty",
			path: "/forms/contact/fields/phone/validate",
			body: `{"value":""}`,
			want: openapi.FieldResult{Field: "phone", Valid: true},
		},
		{
			name: "below minimum",
			path: "/forms/transfer/fields/amount/validate",
			body: `{"value":0}`,
			want: openapi.FieldResult{Field: "amount", Error: "amount must be at least 0.01", Kind: "out-of-range-low"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got openapi.FieldResult
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrors(t *testing.T) {
	h := newHandler(t, server.Options{})

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"unknown form", http.MethodPost, "/forms/nope/validate", `{}`, http.StatusNotFound, `unknown form "nope"`},
		{"unknown form field", http.MethodPost, "/forms/nope/fields/a/validate", `{}`, http.StatusNotFound, `unknown form "nope"`},
		{"unknown field", http.MethodPost, "/forms/contact/fields/nope/validate", `{}`, http.StatusNotFound, `unknown field "nope"`},
		{"malformed body", http.MethodPost, "/forms/contact/validate", `{"name":`, http.StatusBadRequest, "invalid JSON body"},
		{"empty body", http.MethodPost, "/forms/contact/validate", ``, http.StatusBadRequest, "empty request body"},
		{"array body", http.MethodPost, "/forms/contact/validate", `[1,2]`, http.StatusBadRequest, "invalid JSON body"},
		{"trailing garbage", http.MethodPost, "/forms/contact/validate", `{"name":"Al"} garbage`, http.StatusBadRequest, "unexpected data after the JSON value"},
		{"second object", http.MethodPost, "/forms/contact/fields/name/validate", `{"value":"Al"}{"value":"B"}`, http.StatusBadRequest, "unexpected data after the JSON value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			require.Equal(t, tt.wantCode, rec.Code)

			var got openapi.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Contains(t, got.Error, tt.wantErr)
		})
	}

	rec := do(t, h, http.MethodGet, "/forms/contact/validate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDocs(t *testing.T) {
	store := catalog(t)
	doc, err := openapi.FormsDoc("formcheck", "1.0.0", store)
	require.NoError(t, err)

	h, err := server.New(store, server.Options{Doc: doc})
	require.NoError(t, err)

	rec := do(t, h, http.MethodGet, "/docs.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "3.0.3", got["openapi"])
	paths, ok := got["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/forms/transfer/validate")

	h = newHandler(t, server.Options{})
	rec = do(t, h, http.MethodGet, "/docs.json", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := newHandler(t, server.Options{Logger: zap.New(core)})

	do(t, h, http.MethodPost, "/forms/contact/fields/name/validate", `{"value":"Al"}`)

	assert.Equal(t, 1, logs.FilterMessage("field validated").Len())
	reqs := logs.FilterMessage("request").All()
	require.Len(t, reqs, 1)
	fields := reqs[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
