package ynab

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
)

// Budgets returns every budget the token can see, in server order.
func (c *Client) Budgets(ctx context.Context) ([]Budget, error) {
	var resp budgetsResponse
	if err := c.get(ctx, &resp, "/v1/budgets"); err != nil {
		return nil, err
	}

	return resp.Data.Budgets, nil
}

// GetBudgetID returns the budget every scoped call operates on. If none was
// resolved yet it fetches the budget list, picks the first entry in server
// order and caches its ID.
func (c *Client) GetBudgetID(ctx context.Context) (string, error) {
	if c.budgetID != "" {
		return c.budgetID, nil
	}

	budgets, err := c.Budgets(ctx)
	if err != nil {
		return "", err
	}

	if len(budgets) == 0 {
		return "", &NotFoundError{Resource: "budget"}
	}

	c.budgetID = budgets[0].ID

	return c.budgetID, nil
}

// GetBudgetIDByName resolves a budget by name and caches its ID, replacing
// any previously cached budget. Names are compared whole, trimmed and
// case-folded.
func (c *Client) GetBudgetIDByName(ctx context.Context, name string) (string, error) {
	budgets, err := c.Budgets(ctx)
	if err != nil {
		return "", err
	}

	for _, budget := range budgets {
		if foldEqual(budget.Name, name) {
			c.budgetID = budget.ID

			return budget.ID, nil
		}
	}

	return "", &NotFoundError{Resource: "budget", Name: name}
}

func foldEqual(a, b string) bool {
	fold := cases.Fold()

	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
