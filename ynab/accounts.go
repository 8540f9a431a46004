package ynab

import "context"

// Accounts returns the accounts of the current budget, resolving the budget
// first if needed.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	budgetID, err := c.GetBudgetID(ctx)
	if err != nil {
		return nil, err
	}

	var resp accountsResponse
	if err := c.get(ctx, &resp, "/v1/budgets/%s/accounts", budgetID); err != nil {
		return nil, err
	}

	return resp.Data.Accounts, nil
}
