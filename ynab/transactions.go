package ynab

import "context"

// Transactions returns the current budget's transactions in server order,
// typically reverse-chronological.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	budgetID, err := c.GetBudgetID(ctx)
	if err != nil {
		return nil, err
	}

	var resp transactionsResponse
	if err := c.get(ctx, &resp, "/v1/budgets/%s/transactions", budgetID); err != nil {
		return nil, err
	}

	return resp.Data.Transactions, nil
}

// TransactionsByCategory returns only the transactions assigned to the given
// category, filtered server-side through the category endpoint.
func (c *Client) TransactionsByCategory(ctx context.Context, categoryID string) ([]Transaction, error) {
	budgetID, err := c.GetBudgetID(ctx)
	if err != nil {
		return nil, err
	}

	var resp transactionsResponse
	if err := c.get(ctx, &resp, "/v1/budgets/%s/categories/%s/transactions", budgetID, categoryID); err != nil {
		return nil, err
	}

	return resp.Data.Transactions, nil
}

// TransactionsByPayee returns only the transactions involving the given
// payee, filtered server-side through the payee endpoint.
func (c *Client) TransactionsByPayee(ctx context.Context, payeeID string) ([]Transaction, error) {
	budgetID, err := c.GetBudgetID(ctx)
	if err != nil {
		return nil, err
	}

	var resp transactionsResponse
	if err := c.get(ctx, &resp, "/v1/budgets/%s/payees/%s/transactions", budgetID, payeeID); err != nil {
		return nil, err
	}

	return resp.Data.Transactions, nil
}
