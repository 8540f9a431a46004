package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eloyz/pynab-go/internal/config"
	"github.com/eloyz/pynab-go/ynab"
)

func Test_formatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-21.32", formatAmount(-21320))
	assert.Equal(t, "80.00", formatAmount(80000))
	assert.Equal(t, "0.00", formatAmount(0))
}

func Test_render_table(t *testing.T) {
	t.Parallel()

	budgets := []ynab.Budget{
		{ID: "bud-1", Name: "My Budget"},
		{ID: "bud-2", Name: "Shared"},
	}

	var buf bytes.Buffer
	err := render(&buf, &config.Config{Output: "table"}, budgets, budgetTable(budgets))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "ID")
	assert.Contains(t, buf.String(), "bud-1")
	assert.Contains(t, buf.String(), "My Budget")
}

func Test_render_json(t *testing.T) {
	t.Parallel()

	payees := []ynab.Payee{{ID: "pay-1", Name: "Landlord"}}

	var buf bytes.Buffer
	err := render(&buf, &config.Config{Output: "json"}, payees, payeeTable(payees))
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": "pay-1",
		"name": "Landlord",
		"transfer_account_id": "",
		"deleted": false
	}]`, buf.String())
}

func Test_render_yaml(t *testing.T) {
	t.Parallel()

	payees := []ynab.Payee{{ID: "pay-1", Name: "Landlord"}}

	var buf bytes.Buffer
	err := render(&buf, &config.Config{Output: "yaml"}, payees, payeeTable(payees))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "id: pay-1")
	assert.Contains(t, buf.String(), "name: Landlord")
}

func Test_render_unknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render(&buf, &config.Config{Output: "csv"}, nil, table{})
	assert.Error(t, err)
}

func Test_transactionTable(t *testing.T) {
	t.Parallel()

	tbl := transactionTable([]ynab.Transaction{
		{Date: "2024-11-02", Amount: -21320, PayeeName: "Gas Station", CategoryName: "gas", Memo: "fill up"},
	})

	require.Len(t, tbl.rows, 1)
	assert.Equal(t, []string{"2024-11-02", "-21.32", "Gas Station", "gas", "fill up"}, tbl.rows[0])
}
