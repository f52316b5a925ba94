// Command resto computes the change owed when paying in EUR or BGN.
//
// Usage:
//
//	resto calc [-price-currency EUR] [-paid-currency BGN] PRICE PAID
//	resto serve
//
// Defaults are read from RESTO_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"syscall"

	"github.com/oklog/run"
	"go.uber.org/zap"

	"github.com/govalues/resto"
	"github.com/govalues/resto/internal/api"
	"github.com/govalues/resto/internal/config"
	"github.com/govalues/resto/internal/logger"
)

const usage = `usage:
  resto calc [-price-currency CUR] [-paid-currency CUR] PRICE PAID
  resto serve`

var errUsage = errors.New(usage)

func main() {
	if err := realMain(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "calc":
		return calc(cfg, args[1:], stdout)
	case "serve":
		log, err := logger.New(cfg.Env, "resto")
		if err != nil {
			return fmt.Errorf("new logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck
		return serve(cfg, log)
	default:
		return errUsage
	}
}

func calc(cfg *config.Config, args []string, stdout io.Writer) error {
	in := cfg.Input()

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.TextVar(&in.PriceCurr, "price-currency", in.PriceCurr, "currency of the price")
	fs.TextVar(&in.PaidCurr, "paid-currency", in.PaidCurr, "currency of the payment")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%v", err, usage)
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	in.Price, in.Paid = fs.Arg(0), fs.Arg(1)

	d := in.Derive()
	fmt.Fprintf(stdout, "price:   %s (%s)\n", d.Price.Display(), d.PriceEUR.Display())
	fmt.Fprintf(stdout, "paid:    %s (%s)\n", d.Paid.Display(), d.PaidEUR.Display())
	fmt.Fprintf(stdout, "outcome: %v\n", d.Outcome())
	switch d.Outcome() {
	case resto.Exact, resto.ChangeDue:
		fmt.Fprintf(stdout, "change:  %s (%s)\n", d.Change.EUR.Display(), d.Change.BGN.Display())
	}
	return nil
}

func serve(cfg *config.Config, log *zap.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.New(log, cfg.Input()).Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	var g run.Group
	g.Add(func() error {
		log.Info("http server listening", zap.String("addr", cfg.Addr), zap.Stringer("rate", resto.Peg))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("http server shutdown", zap.Error(err))
		}
	})
	g.Add(run.SignalHandler(context.Background(), os.Interrupt, syscall.SIGTERM))

	err := g.Run()
	var sig run.SignalError
	if errors.As(err, &sig) {
		log.Info("shutting down", zap.Stringer("signal", sig.Signal))
		return nil
	}
	return err
}
