// Package root contains the root command for the application
package root

import (
	"time"

	"tallybook/internal/amountutils"
	"tallybook/internal/config"
	"tallybook/internal/export"
	"tallybook/internal/ledger"
	"tallybook/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// TxFlags represents the transaction field flags shared by the add and edit commands
type TxFlags struct {
	Amount   string
	Kind     string
	Category string
	Date     string
	Note     string
	Payee    string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tallybook",
		Short: "A CLI tool to track personal income, expenses and a monthly budget.",
		Long: `tallybook is a CLI tool that keeps a personal ledger of income and expense
transactions. It tracks spending against a monthly budget goal, answers
searches and reports, and can ask Gemini for spending advice.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to tallybook!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			cfg := config.GetGlobalConfig()
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for all packages that keep one
			store.SetLogger(Log)
			ledger.SetLogger(Log)
			amountutils.SetLogger(Log)
			export.SetLogger(Log)

			// Ensure the export delimiter matches the configuration
			if cfg.Export.Delimiter != "" {
				export.SetDelimiter([]rune(cfg.Export.Delimiter)[0])
			}
		},
	}

	// Transaction field flags shared by tx add and tx edit
	Tx = TxFlags{}

	// Category command flags
	CategoryName string
	CategoryIcon string
	CategoryKind string

	// Search command flags
	SearchPayee    string
	SearchCategory string
	SearchFrom     string
	SearchTo       string
	SearchMonth    string

	// Export and import command flags
	ExportFormat string
	ExportOutput string
	ImportInput  string

	// Advise command flags
	UseAI bool

	// Data directory override, empty means the configured default
	DataDir string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&DataDir, "data-dir", "", "Directory holding the ledger data files")
}

// OpenStore resolves the data directory and returns the file-backed store.
// The --data-dir flag wins over the configured directory.
func OpenStore() (*store.FileStore, error) {
	dir := DataDir
	if dir == "" {
		var err error
		dir, err = config.GetGlobalConfig().DataDir()
		if err != nil {
			return nil, err
		}
	}
	return store.NewFileStore(dir), nil
}

// OpenLedger opens the ledger on top of the file-backed store.
func OpenLedger() (*ledger.Ledger, error) {
	s, err := OpenStore()
	if err != nil {
		return nil, err
	}
	return ledger.Open(s, time.Now)
}
