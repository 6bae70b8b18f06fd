package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/qa-lab/vendorscope/pkg/cli/config"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/repository/memory"
	"github.com/qa-lab/vendorscope/pkg/service/assessor"
	"github.com/qa-lab/vendorscope/pkg/usecase"
	"github.com/qa-lab/vendorscope/pkg/utils/safe"
)

// cmdAssess runs a one-shot AI assessment for a single vendor from a seed
// file and prints the resulting scorecard. Useful for trying prompts and
// verifying provider credentials without starting the server.
func cmdAssess() *cli.Command {
	var vendorID string
	var assessTimeout time.Duration
	var geminiCfg config.Gemini
	var seedCfg config.Seed

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "vendor-id",
			Usage:       "ID of the vendor to assess (from the seed file)",
			Required:    true,
			Sources:     cli.EnvVars("VENDORSCOPE_VENDOR_ID"),
			Destination: &vendorID,
		},
		&cli.DurationFlag{
			Name:        "assessment-timeout",
			Usage:       "Timeout for the AI assessment call",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("VENDORSCOPE_ASSESSMENT_TIMEOUT"),
			Destination: &assessTimeout,
		},
	}

	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:  "assess",
		Usage: "Run a one-shot AI risk assessment for a vendor",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo := memory.New()
			defer safe.Close(ctx, repo)

			if err := seedCfg.Configure(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to load seed file")
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient == nil {
				return goerr.New("gemini-project is required for the assess command")
			}

			assessorSvc, err := assessor.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize assessor service")
			}

			uc := usecase.New(repo,
				usecase.WithAssessor(assessorSvc),
				usecase.WithAssessmentTimeout(assessTimeout),
			)

			result, err := uc.Assessment.RequestAssessment(ctx, types.VendorID(vendorID))
			if err != nil {
				return goerr.Wrap(err, "assessment failed")
			}

			printAssessment(result.Vendor, result.Assessment)
			return nil
		},
	}
}

func printAssessment(vendor *model.Vendor, a *model.Assessment) {
	header := color.New(color.FgHiWhite, color.Bold)
	label := color.New(color.FgHiCyan)

	header.Fprintf(os.Stdout, "\n%s (%s)\n", vendor.Name, vendor.ID)
	fmt.Fprintln(os.Stdout)

	label.Fprint(os.Stdout, "Risk Level:      ")
	tierColor(a.RiskTier).Fprintln(os.Stdout, a.RiskTier.String())
	label.Fprint(os.Stdout, "Overall Score:   ")
	fmt.Fprintln(os.Stdout, a.OverallScore)

	label.Fprint(os.Stdout, "Financial:       ")
	fmt.Fprintln(os.Stdout, a.Metrics.FinancialHealth)
	label.Fprint(os.Stdout, "Safety:          ")
	fmt.Fprintln(os.Stdout, a.Metrics.SafetyRecord)
	label.Fprint(os.Stdout, "Performance:     ")
	fmt.Fprintln(os.Stdout, a.Metrics.ProjectPerformance)
	label.Fprint(os.Stdout, "Compliance:      ")
	fmt.Fprintln(os.Stdout, a.Metrics.Compliance)

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, a.Summary)
}

func tierColor(tier types.RiskTier) *color.Color {
	switch tier {
	case types.RiskTierLow:
		return color.New(color.FgGreen, color.Bold)
	case types.RiskTierMedium:
		return color.New(color.FgYellow, color.Bold)
	case types.RiskTierHigh:
		return color.New(color.FgRed, color.Bold)
	case types.RiskTierCritical:
		return color.New(color.FgHiRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}
