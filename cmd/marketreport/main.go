package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/elitGithub/cryptocurrency-market-analysis/internal/app"
	"github.com/elitGithub/cryptocurrency-market-analysis/internal/common"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles   configPaths
	bundlePath    = flag.String("bundle", "", "Analysis bundle JSON file (required)")
	deckPath      = flag.String("deck", "", "Slide deck output path (overrides config)")
	documentPath  = flag.String("document", "", "Document output path (overrides config)")
	documentPathD = flag.String("doc", "", "Document output path (shorthand, overrides config)")
	showVersion   = flag.Bool("version", false, "Print version information")
	showVersionV  = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("MarketReport version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> files -> env)
	// 2. Initialize logger
	// 3. Print banner
	// 4. Run

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("marketreport.toml"); err == nil {
			configFiles = append(configFiles, "marketreport.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.LoadVersionFromFile())

	if *bundlePath == "" {
		flag.Usage()
		logger.Fatal().Msg("Missing required -bundle flag")
		os.Exit(1)
	}

	deckOut := *deckPath
	if deckOut == "" {
		deckOut = filepath.Join(config.Output.Dir, time.Now().Format("2006-01-02_")+config.Output.DeckFile)
	}
	// Merge document flags (shorthand takes precedence)
	docOut := *documentPath
	if *documentPathD != "" {
		docOut = *documentPathD
	}
	if docOut == "" {
		docOut = filepath.Join(config.Output.Dir, time.Now().Format("2006-01-02_")+config.Output.DocumentFile)
	}

	logger.Info().
		Strs("config_files", configFiles).
		Str("bundle", *bundlePath).
		Str("deck", deckOut).
		Str("document", docOut).
		Msg("Application configuration loaded")

	application := app.New(config, logger)
	if err := application.GenerateReports(*bundlePath, deckOut, docOut); err != nil {
		logger.Fatal().Err(err).Msg("Report generation failed")
		os.Exit(1)
	}
}
