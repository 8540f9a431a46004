package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eloyz/pynab-go/ynab"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts of the selected budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, err := setup(cmd)
		if err != nil {
			return err
		}

		accounts, err := client.Accounts(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), cfg, accounts, accountTable(accounts))
	},
}

func accountTable(accounts []ynab.Account) table {
	tbl := table{header: []string{"ID", "NAME", "TYPE", "BALANCE", "CLOSED"}}
	for _, account := range accounts {
		tbl.rows = append(tbl.rows, []string{
			account.ID,
			account.Name,
			account.Type,
			formatAmount(account.Balance),
			strconv.FormatBool(account.Closed),
		})
	}

	return tbl
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
