package main

import (
	"github.com/spf13/cobra"

	"github.com/eloyz/pynab-go/ynab"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories of the selected budget, by group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, err := setup(cmd)
		if err != nil {
			return err
		}

		groups, err := client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), cfg, groups, categoryTable(groups))
	},
}

func categoryTable(groups []ynab.CategoryGroup) table {
	tbl := table{header: []string{"GROUP", "ID", "NAME", "BUDGETED", "BALANCE"}}
	for _, group := range groups {
		for _, category := range group.Categories {
			tbl.rows = append(tbl.rows, []string{
				group.Name,
				category.ID,
				category.Name,
				formatAmount(category.Budgeted),
				formatAmount(category.Balance),
			})
		}
	}

	return tbl
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
