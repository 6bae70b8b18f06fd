package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrSeedNotFound = goerr.New("seed file not found")
	ErrInvalidSeed  = goerr.New("invalid seed file")
)

// Context keys for error values
const (
	SeedPathKey  = "seed_path"
	SeedIndexKey = "seed_index"
)
