package commands

// CommonConfig contains configuration common to all commands
type CommonConfig struct {
	// DataDir is the path to the data directory
	DataDir string `help:"Path to data directory" default:"./data"`
	// Timezone is the timezone to use for transaction dates
	Timezone string `help:"Timezone to use for transaction dates" required:"" default:"America/Sao_Paulo"`
	// LogLevel is the logging level to use
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
}

// EngineConfig contains common flag definitions for the pattern engine
type EngineConfig struct {
	// Language is the statement language hint
	Language string `help:"Statement language hint" default:"pt" enum:"pt,en,es" env:"STATEMENT_LANGUAGE"`
	// Dedupe drops duplicate tuples produced by sibling regexes
	Dedupe bool `help:"Drop duplicate matches produced by overlapping patterns" default:"false"`
	// MaxInputBytes bounds the statement text fed to the regex pass
	MaxInputBytes int `help:"Maximum statement text size in bytes (0 = default)" default:"0"`
}
