package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/qa-lab/vendorscope/pkg/cli/config"
	httpctrl "github.com/qa-lab/vendorscope/pkg/controller/http"
	"github.com/qa-lab/vendorscope/pkg/repository/memory"
	"github.com/qa-lab/vendorscope/pkg/service/assessor"
	"github.com/qa-lab/vendorscope/pkg/service/worker"
	"github.com/qa-lab/vendorscope/pkg/usecase"
	"github.com/qa-lab/vendorscope/pkg/utils/logging"
	"github.com/qa-lab/vendorscope/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var assessTimeout time.Duration
	var reassessInterval time.Duration
	var reassessMaxAge time.Duration
	var geminiCfg config.Gemini
	var seedCfg config.Seed

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("VENDORSCOPE_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "assessment-timeout",
			Usage:       "Timeout for a single AI assessment call",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("VENDORSCOPE_ASSESSMENT_TIMEOUT"),
			Destination: &assessTimeout,
		},
		&cli.DurationFlag{
			Name:        "reassess-interval",
			Usage:       "Interval of the background re-assessment worker (0 disables it)",
			Value:       0,
			Sources:     cli.EnvVars("VENDORSCOPE_REASSESS_INTERVAL"),
			Destination: &reassessInterval,
		},
		&cli.DurationFlag{
			Name:        "reassess-max-age",
			Usage:       "Age after which a vendor assessment is considered stale",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("VENDORSCOPE_REASSESS_MAX_AGE"),
			Destination: &reassessMaxAge,
		},
	}

	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Session-scoped in-memory store: constructed here, discarded on exit
			repo := memory.New()
			defer safe.Close(ctx, repo)

			if err := seedCfg.Configure(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to load seed file")
			}

			ucOpts := []usecase.Option{
				usecase.WithAssessmentTimeout(assessTimeout),
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			assessmentEnabled := llmClient != nil
			if assessmentEnabled {
				assessorSvc, err := assessor.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize assessor service")
				}
				ucOpts = append(ucOpts, usecase.WithAssessor(assessorSvc))
				logging.Default().Info("AI assessment enabled")
			} else {
				logging.Default().Info("Gemini project not configured, assessment requests will be rejected")
			}

			uc := usecase.New(repo, ucOpts...)

			if reassessInterval > 0 && assessmentEnabled {
				w := worker.NewReassessWorker(uc, reassessInterval, reassessMaxAge)
				if err := w.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start re-assessment worker")
				}
				defer w.Stop()
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Serve until a shutdown signal arrives
			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(sigCtx)

			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})

			eg.Go(func() error {
				<-egCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
