// Package logger provides structured logging for gofetch using zerolog.
//
// Clients log through a *Logger. The default is Nop, so a library user who
// never configures logging gets no output at all.
//
// # Configuration
//
//	logger:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "billing-api")
//	client, _ := fetch.New(baseURL, nil, fetch.WithLogger(log))
package logger
