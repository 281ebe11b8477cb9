// Package advise handles the spending advice command
package advise

import (
	"context"
	"fmt"
	"time"

	"tallybook/cmd/root"
	"tallybook/internal/advisor"
	"tallybook/internal/config"
	"tallybook/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the advise command
var Cmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate spending advice from the ledger",
	Long: `Generate spending advice from the recorded transactions. By default the
advice is a deterministic rule-based report; with --ai or ai.enabled in the
configuration it is rephrased by the configured Gemini model.`,
	Run: adviseFunc,
}

func init() {
	Cmd.Flags().BoolVar(&root.UseAI, "ai", false, "Rephrase the advice with the configured Gemini model")
}

func adviseFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	cfg := config.GetGlobalConfig()
	ctx := context.Background()
	if cfg.AI.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	var client advisor.AIClient
	if root.UseAI || cfg.AI.Enabled {
		apiKey := cfg.AI.APIKey
		if apiKey == "" {
			apiKey = config.GetGeminiAPIKey()
		}
		gemini, err := advisor.NewGeminiClient(ctx, apiKey, cfg.AI.Model)
		if err != nil {
			root.Log.Warnf("Gemini client unavailable, using the rule-based report: %v", err)
		} else {
			defer gemini.Close()
			client = gemini
		}
	}

	a := advisor.New(client, logging.NewLogrusAdapterFromLogger(root.Log))
	fmt.Println(a.Advise(ctx, l.Transactions()))
}
