package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eloyz/pynab-go/ynab"
)

var budgetIDCmd = &cobra.Command{
	Use:   "budget-id",
	Short: "Print the ID of the selected budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, client, err := setup(cmd)
		if err != nil {
			return err
		}

		// setup already resolved --budget-name when given; this falls
		// back to the first budget otherwise.
		id, err := client.GetBudgetID(cmd.Context())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), id)

		return err
	},
}

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List all budgets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, err := setup(cmd)
		if err != nil {
			return err
		}

		budgets, err := client.Budgets(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), cfg, budgets, budgetTable(budgets))
	},
}

func budgetTable(budgets []ynab.Budget) table {
	tbl := table{header: []string{"ID", "NAME", "LAST MODIFIED"}}
	for _, budget := range budgets {
		tbl.rows = append(tbl.rows, []string{budget.ID, budget.Name, budget.LastModifiedOn})
	}

	return tbl
}

func init() {
	rootCmd.AddCommand(budgetIDCmd, budgetsCmd)
}
