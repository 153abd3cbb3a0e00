package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/forms"
	"github.com/Gobd/fieldvalidation/internal/config"
	"github.com/Gobd/fieldvalidation/internal/server"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/Gobd/fieldvalidation/ruleconfig"
	"github.com/Gobd/fieldvalidation/transform"
)

const docVersion = "1.0.0"

// errInvalid is returned by check when the values fail validation. The
// findings have already been printed.
var errInvalid = errors.New("values are invalid")

type app struct {
	stdin io.Reader
	cfg   config.Config
	log   *zap.Logger
	forms *ruleconfig.Store
	opts  []v.Option
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin}
	var (
		verbose  bool
		rulesDir string
	)

	root := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate form input against per-field rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rules-dir") {
				cfg.RulesDir = rulesDir
			}
			a.cfg = cfg

			a.log, err = config.NewLogger(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			a.opts = []v.Option{v.WithLogger(a.log)}
			if cfg.LenientNumbers {
				a.opts = append(a.opts, v.WithLenientNumbers())
			}
			return a.loadForms()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().StringVar(&rulesDir, "rules-dir", "", "directory of YAML/JSON rule files (env FORMCHECK_RULES_DIR)")

	root.AddCommand(
		a.formsCmd(),
		a.checkCmd(),
		a.schemaCmd(),
		a.serveCmd(),
	)
	return root
}

// loadForms registers the built-in forms followed by any rule files.
func (a *app) loadForms() error {
	a.forms = ruleconfig.NewStore()
	for _, name := range forms.Names() {
		rules, _ := forms.Lookup(name)
		if err := a.forms.Add(name, rules); err != nil {
			return err
		}
	}
	if a.cfg.RulesDir == "" {
		return nil
	}
	if err := a.forms.LoadFS(os.DirFS(a.cfg.RulesDir), forms.Customs()); err != nil {
		return err
	}
	a.log.Debug("rule files loaded", zap.String("dir", a.cfg.RulesDir), zap.Strings("forms", a.forms.Names()))
	return nil
}

func (a *app) formsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the available forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.forms.Names() {
				rules, _ := a.forms.Form(name)
				cmd.Printf("%s\t%d fields\n", name, rules.Len())
			}
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	var (
		form  string
		file  string
		trim  bool
		strip []string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a JSON or YAML values object against a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, ok := a.forms.Form(form)
			if !ok {
				return fmt.Errorf("unknown form %q", form)
			}
			values, err := a.readValues(file)
			if err != nil {
				return err
			}

			var fns []func(v.Values) v.Values
			if trim {
				fns = append(fns, transform.TrimSpace)
			}
			if len(strip) > 0 {
				fns = append(fns, transform.StripSpaces(strip...))
			}
			values = transform.Multi(values, fns...)

			errs, valid := v.New(rules, a.opts...).ValidateForm(values)
			if valid {
				cmd.Println("ok")
				return nil
			}
			for _, name := range errs.Fields() {
				cmd.Printf("%s: %s\n", name, errs.Get(name))
			}
			return errInvalid
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "form to validate against")
	cmd.Flags().StringVar(&file, "values", "-", "values file, or - for stdin")
	cmd.Flags().BoolVar(&trim, "trim", false, "trim surrounding whitespace from string values")
	cmd.Flags().StringSliceVar(&strip, "strip", nil, "fields to remove all whitespace from")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

func (a *app) readValues(file string) (v.Values, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	values, err := decodeValues(data)
	if err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	return values, nil
}

func (a *app) schemaCmd() *cobra.Command {
	var form string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document for the validation endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var catalog openapi.Catalog = a.forms
			if form != "" {
				rules, ok := a.forms.Form(form)
				if !ok {
					return fmt.Errorf("unknown form %q", form)
				}
				one := ruleconfig.NewStore()
				if err := one.Add(form, rules); err != nil {
					return err
				}
				catalog = one
			}

			doc, err := openapi.FormsDoc("formcheck", docVersion, catalog)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "describe only this form")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve form validation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Addr
			}
			doc, err := openapi.FormsDoc("formcheck", docVersion, a.forms)
			if err != nil {
				return err
			}
			handler, err := server.New(a.forms, server.Options{
				Logger:         a.log,
				LenientNumbers: a.cfg.LenientNumbers,
				Doc:            doc,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (env FORMCHECK_ADDR)")
	return cmd
}

func serve(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
