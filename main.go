package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tallybook/cmd/advise"
	"tallybook/cmd/budget"
	"tallybook/cmd/category"
	"tallybook/cmd/export"
	"tallybook/cmd/importer"
	"tallybook/cmd/overview"
	"tallybook/cmd/report"
	"tallybook/cmd/root"
	"tallybook/cmd/search"
	"tallybook/cmd/tx"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Now that logging is properly configured, initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(overview.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	// Get log level from environment variable
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info" // Default log level
	}

	// Parse the log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// This is critical: set the global logrus level BEFORE any logging happens
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
