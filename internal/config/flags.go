package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// parseFlags parses configuration flags from args and returns the
// positional arguments that follow them.
//
// Flags:
//
//	-a backend base URL (e.g. http://127.0.0.1:8000)
//	-profile backend profile name (hosted, local)
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-d history DSN (SQLite file path or postgres:// URL)
//	-concurrency number of files uploaded in parallel
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-o output format (json, pretty)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		baseURL        string
		profile        string
		requestTimeout time.Duration
		historyDSN     string
		concurrency    int
		logLevel       string
		logFile        string
		outputFormat   string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("fintrace", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&baseURL, "a", "", "Backend base URL")
	fs.StringVar(&profile, "profile", "", "Backend profile (hosted, local)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&historyDSN, "d", "", "History DSN")
	fs.IntVar(&concurrency, "concurrency", 0, "Parallel uploads")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&outputFormat, "o", "", "Output format (json, pretty)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			Profile:        profile,
			RequestTimeout: requestTimeout,
		},
		History:      History{DSN: historyDSN},
		Workers:      Workers{Concurrency: concurrency},
		Log:          Log{Level: logLevel, File: logFile},
		Output:       Output{Format: outputFormat},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
