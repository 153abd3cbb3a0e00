// Package server exposes form validation over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/Gobd/fieldvalidation/transform"
)

const maxBodyBytes = 1 << 20

// Options configures the handler.
type Options struct {
	Logger         *zap.Logger
	LenientNumbers bool
	// Doc is served at /docs.json when set.
	Doc *openapi3.T
}

type server struct {
	forms   openapi.Catalog
	log     *zap.Logger
	lenient bool
	doc     []byte
}

// New returns an http.Handler serving the validation endpoints for forms.
func New(forms openapi.Catalog, opts Options) (http.Handler, error) {
	s := &server{
		forms:   forms,
		log:     opts.Logger,
		lenient: opts.LenientNumbers,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if opts.Doc != nil {
		b, err := opts.Doc.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("server: marshal docs: %w", err)
		}
		s.doc = b
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/forms", s.listForms)
	r.Post("/forms/{form}/validate", s.validateForm)
	r.Post("/forms/{form}/fields/{field}/validate", s.validateField)
	if s.doc != nil {
		r.Get("/docs.json", s.docs)
	}
	return r, nil
}

func (s *server) listForms(w http.ResponseWriter, _ *http.Request) {
	names := s.forms.Names()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, openapi.FormList{Forms: names})
}

func (s *server) validateForm(w http.ResponseWriter, r *http.Request) {
	val, ok := s.validator(w, r)
	if !ok {
		return
	}

	var values v.Values
	if err := decode(r, &values); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if r.URL.Query().Get("trim") == "true" {
		values = transform.TrimSpace(values)
	}

	errs, valid := val.ValidateForm(values)
	writeJSON(w, http.StatusOK, openapi.FormResult{Valid: valid, Errors: errs})
}

func (s *server) validateField(w http.ResponseWriter, r *http.Request) {
	val, ok := s.validator(w, r)
	if !ok {
		return
	}

	field := chi.URLParam(r, "field")
	if !val.Rules().Has(field) {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown field %q", field))
		return
	}

	var req openapi.FieldRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	valid := val.ValidateSingleField(field, req.Value)
	writeJSON(w, http.StatusOK, openapi.FieldResult{
		Field: field,
		Valid: valid,
		Error: val.Errors().Get(field),
		Kind:  string(val.Kind(field)),
	})
}

func (s *server) docs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.doc)
}

// validator resolves the {form} parameter to a fresh Validator, writing a
// 404 when the form is unknown.
func (s *server) validator(w http.ResponseWriter, r *http.Request) (*v.Validator, bool) {
	name := chi.URLParam(r, "form")
	rules, ok := s.forms.Form(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown form %q", name))
		return nil, false
	}
	opts := []v.Option{v.WithLogger(s.log.With(zap.String("form", name)))}
	if s.lenient {
		opts = append(opts, v.WithLenientNumbers())
	}
	return v.New(rules, opts...), true
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body: unexpected data after the JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, openapi.ErrorResponse{Error: err.Error()})
}
