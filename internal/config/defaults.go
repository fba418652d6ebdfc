package config

const (
	// DefaultChunkSize is the number of ads printed per line
	DefaultChunkSize = 4
	// DefaultOutputJSONFile is the default export file name
	DefaultOutputJSONFile = "schedule.json"
	// DefaultOutputJSONDir is the default export directory
	DefaultOutputJSONDir = "storage"
	// DefaultEnvFile is the env file read on startup
	DefaultEnvFile = ".env"
)

// Environment variables read by LoadEnv
const (
	EnvPlan       = "ADSCHED_PLAN"
	EnvChunkSize  = "ADSCHED_CHUNK_SIZE"
	EnvOutputDir  = "ADSCHED_OUTPUT_DIR"
	EnvOutputFile = "ADSCHED_OUTPUT_FILE"
)
