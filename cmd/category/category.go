// Package category handles category management commands
package category

import (
	"fmt"
	"strconv"

	"tallybook/cmd/root"
	"tallybook/internal/models"
	"tallybook/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage transaction categories",
	Long:  `Manage transaction categories: add, list, edit and remove them.`,
}

// addCmd represents the category add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new category",
	Long:  `Add a new category with a name, an optional icon and a kind.`,
	Run:   addFunc,
}

// listCmd represents the category list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Long:  `List every category known to the ledger.`,
	Run:   listFunc,
}

// editCmd represents the category edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing category",
	Long: `Edit an existing category. Only the fields passed as flags are changed.
Transactions keep the category name they were recorded with.`,
	Args: cobra.ExactArgs(1),
	Run:  editFunc,
}

// rmCmd represents the category rm command
var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a category",
	Long: `Remove a category. Transactions referencing it keep their category
name and are not touched.`,
	Args: cobra.ExactArgs(1),
	Run:  rmFunc,
}

func init() {
	addCmd.Flags().StringVarP(&root.CategoryName, "name", "n", "", "Category name")
	addCmd.Flags().StringVarP(&root.CategoryIcon, "icon", "i", "", "Category icon")
	addCmd.Flags().StringVarP(&root.CategoryKind, "kind", "k", "expense", "Category kind: income or expense")
	addCmd.MarkFlagRequired("name")

	editCmd.Flags().StringVarP(&root.CategoryName, "name", "n", "", "New category name")
	editCmd.Flags().StringVarP(&root.CategoryIcon, "icon", "i", "", "New category icon")
	editCmd.Flags().StringVarP(&root.CategoryKind, "kind", "k", "", "New category kind: income or expense")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(rmCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseKind(root.CategoryKind)
	if err != nil {
		root.Log.Fatalf("Invalid kind: %v", err)
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	category, err := l.AddCategory(root.CategoryName, root.CategoryIcon, kind)
	if err != nil {
		root.Log.Fatalf("Error adding category: %v", err)
	}
	fmt.Printf("Added category #%d: %s\n", category.ID, category.Name)
}

func listFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	fmt.Print(report.RenderCategories(l.Categories()))
}

func editFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid category id %q", args[0])
	}

	update := models.CategoryUpdate{}
	if cmd.Flags().Changed("name") {
		update.Name = &root.CategoryName
	}
	if cmd.Flags().Changed("icon") {
		update.Icon = &root.CategoryIcon
	}
	if cmd.Flags().Changed("kind") {
		kind, err := models.ParseKind(root.CategoryKind)
		if err != nil {
			root.Log.Fatalf("Invalid kind: %v", err)
		}
		update.Kind = &kind
	}

	if update.IsEmpty() {
		root.Log.Fatal("Nothing to update: pass at least one field flag")
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	ok, err := l.UpdateCategory(id, update)
	if err != nil {
		root.Log.Fatalf("Error updating category: %v", err)
	}
	if !ok {
		root.Log.Fatalf("Category #%d not found", id)
	}
	fmt.Printf("Updated category #%d.\n", id)
}

func rmFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid category id %q", args[0])
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	ok, err := l.DeleteCategory(id)
	if err != nil {
		root.Log.Fatalf("Error removing category: %v", err)
	}
	if !ok {
		root.Log.Fatalf("Category #%d not found", id)
	}
	fmt.Printf("Removed category #%d.\n", id)
}
