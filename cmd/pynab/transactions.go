package main

import (
	"github.com/spf13/cobra"

	"github.com/eloyz/pynab-go/ynab"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions, optionally filtered by category or payee name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, err := setup(cmd)
		if err != nil {
			return err
		}

		categoryName, _ := cmd.Flags().GetString("category")
		payeeName, _ := cmd.Flags().GetString("payee")

		ctx := cmd.Context()

		var transactions []ynab.Transaction

		switch {
		case categoryName != "":
			categoryID, err := client.CategoryID(ctx, categoryName, "")
			if err != nil {
				return err
			}

			transactions, err = client.TransactionsByCategory(ctx, categoryID)
			if err != nil {
				return err
			}
		case payeeName != "":
			payeeID, err := client.PayeeID(ctx, payeeName)
			if err != nil {
				return err
			}

			transactions, err = client.TransactionsByPayee(ctx, payeeID)
			if err != nil {
				return err
			}
		default:
			transactions, err = client.Transactions(ctx)
			if err != nil {
				return err
			}
		}

		return render(cmd.OutOrStdout(), cfg, transactions, transactionTable(transactions))
	},
}

func transactionTable(transactions []ynab.Transaction) table {
	tbl := table{header: []string{"DATE", "AMOUNT", "PAYEE", "CATEGORY", "MEMO"}}
	for _, txn := range transactions {
		tbl.rows = append(tbl.rows, []string{
			txn.Date,
			formatAmount(txn.Amount),
			txn.PayeeName,
			txn.CategoryName,
			txn.Memo,
		})
	}

	return tbl
}

func init() {
	transactionsCmd.Flags().String("category", "", "Only transactions in this category")
	transactionsCmd.Flags().String("payee", "", "Only transactions with this payee")
	transactionsCmd.MarkFlagsMutuallyExclusive("category", "payee")

	rootCmd.AddCommand(transactionsCmd)
}
