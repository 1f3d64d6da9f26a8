package config

import (
	"flag"

	"github.com/dmitrijs2005/vaccinehub/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-m string   storage backend: postgres or memory
//	-w int      bcrypt work factor
//	-l string   log level
//	-f string   log format: json or text
//
// args are filtered with flagx.FilterArgs first, so flags meant for other
// components (e.g. -c) are ignored here.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-m", "-w", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StorageType, "m", config.StorageType, "storage backend (postgres|memory)")
	fs.IntVar(&config.BcryptWorkFactor, "w", config.BcryptWorkFactor, "bcrypt work factor")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
