package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/interfaces"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Seed holds CLI flags for loading an initial vendor portfolio from a TOML
// file. The store is session-only, so a seed file is the practical way to
// start the dashboard with data.
type Seed struct {
	path string
}

// SeedVendor is a single vendor entry of the seed file
type SeedVendor struct {
	ID            string                 `toml:"id"`
	Name          string                 `toml:"name"`
	Category      string                 `toml:"category"`
	Description   string                 `toml:"description"`
	Status        string                 `toml:"status"`
	OverallScore  int                    `toml:"overall_score"`
	Metrics       model.ScorecardMetrics `toml:"metrics"`
	LastAuditDate string                 `toml:"last_audit_date"`
}

// SeedFile is the top-level structure of the seed file
type SeedFile struct {
	Vendors []SeedVendor `toml:"vendor"`
}

// Flags returns CLI flags for seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "Path to a TOML file with initial vendor records",
			Sources:     cli.EnvVars("VENDORSCOPE_SEED"),
			Destination: &s.path,
		},
	}
}

// Path returns the configured seed file path
func (s *Seed) Path() string {
	return s.path
}

// Configure loads the seed file, validates every record and inserts them
// into the repository. A missing flag is not an error; the portfolio just
// starts empty.
func (s *Seed) Configure(ctx context.Context, repo interfaces.Repository) error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return goerr.Wrap(ErrSeedNotFound, "failed to read seed file", goerr.V(SeedPathKey, s.path))
	}

	var file SeedFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return goerr.Wrap(err, "failed to parse seed file", goerr.V(SeedPathKey, s.path))
	}

	for i, entry := range file.Vendors {
		vendor, err := model.NewVendor(
			types.VendorID(entry.ID),
			entry.Name,
			entry.Category,
			entry.Description,
			entry.OverallScore,
			entry.Metrics,
			entry.LastAuditDate,
		)
		if err != nil {
			return goerr.Wrap(err, "invalid seed vendor",
				goerr.V(SeedPathKey, s.path),
				goerr.V(SeedIndexKey, i),
			)
		}

		// Seed entries may carry a non-Pending status to reproduce an
		// existing portfolio.
		if entry.Status != "" {
			status, err := types.ParseVendorStatus(entry.Status)
			if err != nil {
				return goerr.Wrap(ErrInvalidSeed, "invalid seed vendor status",
					goerr.V(SeedPathKey, s.path),
					goerr.V(SeedIndexKey, i),
					goerr.V("status", entry.Status),
				)
			}
			vendor.Status = status
		}

		if _, err := repo.Vendor().Create(ctx, vendor); err != nil {
			return goerr.Wrap(err, "failed to insert seed vendor",
				goerr.V(SeedPathKey, s.path),
				goerr.V(SeedIndexKey, i),
			)
		}
	}

	logging.Default().Info("Seeded vendor portfolio",
		"path", s.path,
		"vendors", len(file.Vendors),
	)
	return nil
}
