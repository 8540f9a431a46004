package main

import (
	"github.com/spf13/cobra"

	"github.com/eloyz/pynab-go/ynab"
)

var payeesCmd = &cobra.Command{
	Use:   "payees",
	Short: "List the payees of the selected budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, err := setup(cmd)
		if err != nil {
			return err
		}

		payees, err := client.Payees(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), cfg, payees, payeeTable(payees))
	},
}

func payeeTable(payees []ynab.Payee) table {
	tbl := table{header: []string{"ID", "NAME"}}
	for _, payee := range payees {
		tbl.rows = append(tbl.rows, []string{payee.ID, payee.Name})
	}

	return tbl
}

func init() {
	rootCmd.AddCommand(payeesCmd)
}
