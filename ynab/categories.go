package ynab

import "context"

// Categories returns the current budget's categories the way the API groups
// them, one entry per category group.
func (c *Client) Categories(ctx context.Context) ([]CategoryGroup, error) {
	budgetID, err := c.GetBudgetID(ctx)
	if err != nil {
		return nil, err
	}

	var resp categoriesResponse
	if err := c.get(ctx, &resp, "/v1/budgets/%s/categories", budgetID); err != nil {
		return nil, err
	}

	return resp.Data.CategoryGroups, nil
}

// CategoryID resolves a category name to its ID within the current budget.
// With groupName empty every group is searched and the first match in server
// order wins; otherwise only groups with that name are considered. Names are
// compared whole, trimmed and case-folded.
func (c *Client) CategoryID(ctx context.Context, name, groupName string) (string, error) {
	groups, err := c.Categories(ctx)
	if err != nil {
		return "", err
	}

	for _, group := range groups {
		if groupName != "" && !foldEqual(group.Name, groupName) {
			continue
		}

		for _, category := range group.Categories {
			if foldEqual(category.Name, name) {
				return category.ID, nil
			}
		}
	}

	return "", &NotFoundError{Resource: "category", Name: name}
}
