package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	staticcache "github.com/static-cache/static-cache"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	configFlag         string
	portFlag           int
	rootFlag           string
	filesFlag          string
	cacheSizeFlag      int
	dbFlag             string
	verbosityTraceFlag bool
	logFilenameFlag    string

	// this is set by goreleaser
	version string
)

func init() {
	flag.StringVar(&configFlag, "config", "", "Config file to load")
	flag.IntVar(&portFlag, "port", 3490, "Port to listen on")
	flag.StringVar(&rootFlag, "root", "./serverroot", "Document root for served content")
	flag.StringVar(&filesFlag, "files", "./serverfiles", "Directory with system files (404 page)")
	flag.IntVar(&cacheSizeFlag, "cache-size", 10, "Maximum number of cached entries (0 = unbounded)")
	flag.StringVar(&dbFlag, "db", "", "Serve content from a sqlite DB instead of the filesystem (use 'memory' for in-memory db)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stdout)")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	// set log level
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}

	// set up log output to stdout
	// also output to logfile if specified
	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if logFilenameFlag != "" {
		if logFileOutput, err := os.OpenFile(logFilenameFlag, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()

	cfg := getServerConfig()

	rand.Seed(time.Now().UnixNano())

	server, err := staticcache.FromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not set up server")
	}

	log.Info().Msgf("Serving %s on port %d (cache size %d)", cfg.ServerRoot, cfg.Port, cfg.CacheSize)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), server); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// getServerConfig merges the optional config file with CLI flags.
// Flags that were set explicitly on the command line win over the
// file; flag defaults fill anything neither source provides.
func getServerConfig() staticcache.Config {
	var cfg staticcache.Config
	if configFlag != "" {
		fileCfg, err := staticcache.GetConfig(configFlag)
		if err != nil {
			log.Fatal().Err(err).Str("config", configFlag).Msg("Could not read config file")
		}
		cfg = fileCfg
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["port"] || cfg.Port == 0 {
		cfg.Port = portFlag
	}
	if set["root"] || cfg.ServerRoot == "" {
		cfg.ServerRoot = rootFlag
	}
	if set["files"] || cfg.ServerFiles == "" {
		cfg.ServerFiles = filesFlag
	}
	if set["cache-size"] {
		cfg.CacheSize = cacheSizeFlag
	} else if configFlag == "" {
		cfg.CacheSize = cacheSizeFlag
	}
	if set["db"] {
		cfg.DB = dbFlag
		cfg.Storage = "sqlite"
	}
	if cfg.DB == "memory" {
		cfg.DB = "file::memory:?cache=shared"
	}
	return cfg
}
