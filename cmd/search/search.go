// Package search handles transaction search commands
package search

import (
	"fmt"
	"time"

	"tallybook/cmd/root"
	"tallybook/internal/dateutils"
	"tallybook/internal/ledger"
	"tallybook/internal/report"
	searchengine "tallybook/internal/search"
	"tallybook/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search transactions by payee, category or date range",
	Long: `Search transactions by payee, category, month or date range. All given
criteria must match. Every executed search is recorded in the history.`,
	Run: searchFunc,
}

// historyCmd represents the search history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past search queries",
	Long:  `Show the recorded history of search queries, oldest first.`,
	Run:   historyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SearchPayee, "payee", "p", "", "Match transactions with this payee")
	Cmd.Flags().StringVarP(&root.SearchCategory, "category", "c", "", "Match transactions in this category")
	Cmd.Flags().StringVar(&root.SearchFrom, "from", "", "Start of the date range, inclusive")
	Cmd.Flags().StringVar(&root.SearchTo, "to", "", "End of the date range, inclusive")
	Cmd.Flags().StringVarP(&root.SearchMonth, "month", "m", "", "Match transactions in this month (YYYY-MM)")
	Cmd.AddCommand(historyCmd)
}

func searchFunc(cmd *cobra.Command, args []string) {
	f := searchengine.Filter{
		Payee:    root.SearchPayee,
		Category: root.SearchCategory,
	}

	if root.SearchMonth != "" {
		month, err := time.Parse("2006-01", root.SearchMonth)
		if err != nil {
			root.Log.Fatalf("Invalid month %q: want YYYY-MM", root.SearchMonth)
		}
		from := dateutils.StartOfMonth(month)
		to := dateutils.EndOfMonth(month)
		f.From, f.To = &from, &to
	} else {
		if root.SearchFrom != "" {
			parsed, _, err := dateutils.ParseDate(root.SearchFrom)
			if err != nil {
				root.Log.Fatalf("Invalid from date: %v", err)
			}
			f.From = &parsed
		}
		if root.SearchTo != "" {
			parsed, _, err := dateutils.ParseDate(root.SearchTo)
			if err != nil {
				root.Log.Fatalf("Invalid to date: %v", err)
			}
			f.To = &parsed
		}
		if (f.From == nil) != (f.To == nil) {
			root.Log.Warn("A date range needs both --from and --to, ignoring the single bound")
		}
	}

	if f.IsEmpty() {
		root.Log.Fatal("No search criteria: pass --payee, --category, --month or a date range")
	}

	st, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening store: %v", err)
	}
	l, err := ledger.Open(st, time.Now)
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	eng := searchengine.NewEngine()
	results := eng.Search(l.Transactions(), f)

	fmt.Print(report.RenderTransactions(results))
	fmt.Printf("Found %d matching transactions.\n", len(results))

	saveHistory(st, eng.History())
}

// saveHistory appends this session's queries to the stored search history.
// History is an audit trail, failures to write it never fail the search.
func saveHistory(st *store.FileStore, entries []string) {
	if len(entries) == 0 {
		return
	}
	history, err := st.LoadSearchHistory()
	if err != nil {
		root.Log.Warnf("Failed to load search history: %v", err)
		return
	}
	if err := st.SaveSearchHistory(append(history, entries...)); err != nil {
		root.Log.Warnf("Failed to save search history: %v", err)
	}
}

func historyFunc(cmd *cobra.Command, args []string) {
	st, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening store: %v", err)
	}

	history, err := st.LoadSearchHistory()
	if err != nil {
		root.Log.Fatalf("Error loading search history: %v", err)
	}

	if len(history) == 0 {
		fmt.Println("No searches recorded.")
		return
	}
	for _, entry := range history {
		fmt.Println(entry)
	}
}
