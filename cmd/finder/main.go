// Command finder searches the built-in catalogs from the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"edu-finder-backend/internal/catalog"
	"edu-finder-backend/internal/domain"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(catalog.NewRegistry(), os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(reg domain.CatalogRegistry, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "finder",
		Short: "Search scholarships, schemes, exams, counselling and news",
		Long: `finder filters the compiled-in education catalogs.

Examples:
  finder catalogs
  finder search entrance-exams --q neet
  finder search opportunities --flag scSt --profile profile.yaml -o yaml`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(newCatalogsCmd(reg), newSearchCmd(reg))
	return root
}
