// Package advisor turns the transaction history into human-readable spending
// advice. A deterministic rule-based report is always available; when an AI
// client is configured the report is handed to Gemini for a richer narrative,
// falling back to the rule-based text whenever the AI call fails.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// Advisor generates spending advice from the transaction history.
type Advisor struct {
	aiClient AIClient
	logger   logging.Logger
}

// New creates an Advisor. The aiClient may be nil, in which case only the
// deterministic report is produced.
func New(aiClient AIClient, logger logging.Logger) *Advisor {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Advisor{
		aiClient: aiClient,
		logger:   logger,
	}
}

// Advise produces spending advice for the given transactions. With an AI
// client configured, the deterministic report is sent to it as context and
// the generated text is returned; any AI failure falls back to the
// deterministic report. Without expense data there is nothing to rephrase,
// so the guidance message is returned directly.
func (a *Advisor) Advise(ctx context.Context, txs []models.Transaction) string {
	report := Report(txs)
	if a.aiClient == nil || !hasExpenses(txs) {
		return report
	}

	advice, err := a.aiClient.Advise(ctx, buildPrompt(report))
	if err != nil {
		a.logger.WithError(err).Warn("AI advice generation failed, using rule-based report")
		return report
	}
	advice = strings.TrimSpace(advice)
	if advice == "" {
		a.logger.Warn("AI returned empty advice, using rule-based report")
		return report
	}

	a.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "ai_advice"},
		logging.Field{Key: logging.FieldCount, Value: len(txs)},
	).Debug("Generated advice using AI")
	return advice
}

func hasExpenses(txs []models.Transaction) bool {
	for _, tx := range txs {
		if tx.IsExpense() {
			return true
		}
	}
	return false
}

func buildPrompt(report string) string {
	return fmt.Sprintf(`You are a personal finance assistant. Below is a rule-based analysis of the user's recorded transactions.

%s

Rewrite this as friendly, practical advice for the user. Keep every figure exactly as given, keep the three-part structure, and add at most three short, concrete suggestions grounded in the numbers. Answer in plain text without markdown.`, report)
}
