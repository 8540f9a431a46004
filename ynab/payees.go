package ynab

import "context"

// Payees returns the payees of the current budget, resolving the budget
// first if needed.
func (c *Client) Payees(ctx context.Context) ([]Payee, error) {
	budgetID, err := c.GetBudgetID(ctx)
	if err != nil {
		return nil, err
	}

	var resp payeesResponse
	if err := c.get(ctx, &resp, "/v1/budgets/%s/payees", budgetID); err != nil {
		return nil, err
	}

	return resp.Data.Payees, nil
}

// PayeeID resolves a payee name to its ID within the current budget,
// returning the first match in server order. Names are compared whole,
// trimmed and case-folded.
func (c *Client) PayeeID(ctx context.Context, name string) (string, error) {
	payees, err := c.Payees(ctx)
	if err != nil {
		return "", err
	}

	for _, payee := range payees {
		if foldEqual(payee.Name, name) {
			return payee.ID, nil
		}
	}

	return "", &NotFoundError{Resource: "payee", Name: name}
}
