// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awacke1/hub-scout/internal/catalog"
	"github.com/awacke1/hub-scout/internal/normalize"
	"github.com/awacke1/hub-scout/internal/report"
	"github.com/awacke1/hub-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the hub catalog for models, datasets, or spaces",
	Long: `Search queries the Hugging Face Hub for items matching a free-text query
in one of the three categories. Results keep the hub's own ranking and
are rendered as a table, JSON, YAML, or the HTML fragment list the
browser uses. With --aggregate the summary report is appended.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("type")
	kind, err := types.ParseKind(kindFlag)
	if err != nil {
		return err
	}

	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	author, _ := cmd.Flags().GetString("author")

	client := catalog.New(catalogConfig(cmd))
	items, err := client.Search(context.Background(), catalog.Query{FreeText: queryText, Author: author}, kind)
	if err != nil {
		return err
	}

	records, err := normalize.Records(items, kind)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "table", "":
		report.WriteTable(records, os.Stdout)
	case "json":
		if err := report.WriteJSON(records, os.Stdout); err != nil {
			return err
		}
	case "yaml":
		if err := report.WriteYAML(records, os.Stdout); err != nil {
			return err
		}
	case "html":
		if err := report.WriteHTML(records, os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output %q: use table, json, yaml, or html", format)
	}

	if aggregate, _ := cmd.Flags().GetBool("aggregate"); aggregate {
		rep, err := report.Aggregate(records)
		if err != nil {
			return err
		}
		switch format {
		case "json":
			return report.WriteReportJSON(rep, os.Stdout)
		case "yaml":
			return report.WriteReportYAML(rep, os.Stdout)
		default:
			fmt.Fprintln(os.Stdout)
			report.WriteReportTable(rep, os.Stdout)
		}
	}
	return nil
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search query (or pass as arguments)")
	searchCmd.Flags().String("type", "models", "item category: models, datasets, or spaces")
	searchCmd.Flags().String("author", "", "restrict results to one user or organization")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (0 = config default)")
	searchCmd.Flags().String("output", "table", "output format: table, json, yaml, or html")
	searchCmd.Flags().Bool("aggregate", false, "append the aggregate report")

	rootCmd.AddCommand(searchCmd)
}
