package ynab

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/jarcoal/httpmock"
)

func Test_Accounts_usesPresetBudget(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(
		http.MethodGet,
		"/v1/budgets/abc123/accounts",
		httpmock.NewStringResponder(http.StatusOK, `{"data": {"accounts": [
			{"id": "acc-1", "name": "Checking", "type": "checking", "on_budget": true, "balance": 150250}
		]}}`),
	)

	client := newTestClient(transport)
	client.SetBudgetID("abc123")

	got, err := client.Accounts(context.Background())
	if err != nil {
		t.Fatalf("Accounts() error = %v", err)
	}

	want := []Account{
		{ID: "acc-1", Name: "Checking", Type: "checking", OnBudget: true, Balance: 150250},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Accounts() got = %v, want %v", got, want)
	}
}

func Test_Accounts_resolvesBudgetLazily(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(
		http.MethodGet,
		"/v1/budgets",
		httpmock.NewStringResponder(http.StatusOK, budgetsJSON),
	)
	transport.RegisterResponder(
		http.MethodGet,
		"/v1/budgets/bud-1/accounts",
		httpmock.NewStringResponder(http.StatusOK, `{"data": {"accounts": [
			{"id": "acc-1", "name": "Checking"}
		]}}`),
	)

	client := newTestClient(transport)

	got, err := client.Accounts(context.Background())
	if err != nil {
		t.Fatalf("Accounts() error = %v", err)
	}

	want := []Account{{ID: "acc-1", Name: "Checking"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Accounts() got = %v, want %v", got, want)
	}
}

func Test_Categories(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(
		http.MethodGet,
		"/v1/budgets/bud-42/categories",
		httpmock.NewStringResponder(http.StatusOK, categoriesJSON),
	)

	client := newTestClient(transport)
	client.SetBudgetID("bud-42")

	got, err := client.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Categories() returned %d groups, want 2", len(got))
	}

	if got[0].Name != "car" || len(got[0].Categories) != 2 {
		t.Errorf("first group = %+v, want car with 2 categories", got[0])
	}
}

func Test_Payees(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(
		http.MethodGet,
		"/v1/budgets/bud-42/payees",
		httpmock.NewStringResponder(http.StatusOK, payeesJSON),
	)

	client := newTestClient(transport)
	client.SetBudgetID("bud-42")

	got, err := client.Payees(context.Background())
	if err != nil {
		t.Fatalf("Payees() error = %v", err)
	}

	want := []Payee{
		{ID: "pay-1", Name: "Grocery Store"},
		{ID: "pay-2", Name: "Landlord"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Payees() got = %v, want %v", got, want)
	}
}

//nolint:funlen // mostly test cases in list
func Test_Transactions(t *testing.T) {
	t.Parallel()

	const (
		allJSON = `{"data": {"transactions": [
			{"id": "txn-2", "date": "2024-11-02", "amount": -21320, "category_id": "cat-gas-car", "payee_id": "pay-1"},
			{"id": "txn-1", "date": "2024-11-01", "amount": -5000, "category_id": "cat-electric", "payee_id": "pay-2"}
		]}}`
		byCategoryJSON = `{"data": {"transactions": [
			{"id": "txn-2", "date": "2024-11-02", "amount": -21320, "category_id": "cat-gas-car", "payee_id": "pay-1"}
		]}}`
		byPayeeJSON = `{"data": {"transactions": [
			{"id": "txn-1", "date": "2024-11-01", "amount": -5000, "category_id": "cat-electric", "payee_id": "pay-2"}
		]}}`
	)

	tests := []struct {
		name    string
		path    string
		body    string
		fetch   func(context.Context, *Client) ([]Transaction, error)
		wantIDs []string
	}{
		{
			name: "unfiltered",
			path: "/v1/budgets/bud-42/transactions",
			body: allJSON,
			fetch: func(ctx context.Context, c *Client) ([]Transaction, error) {
				return c.Transactions(ctx)
			},
			wantIDs: []string{"txn-2", "txn-1"},
		},
		{
			name: "by category",
			path: "/v1/budgets/bud-42/categories/cat-gas-car/transactions",
			body: byCategoryJSON,
			fetch: func(ctx context.Context, c *Client) ([]Transaction, error) {
				return c.TransactionsByCategory(ctx, "cat-gas-car")
			},
			wantIDs: []string{"txn-2"},
		},
		{
			name: "by payee",
			path: "/v1/budgets/bud-42/payees/pay-2/transactions",
			body: byPayeeJSON,
			fetch: func(ctx context.Context, c *Client) ([]Transaction, error) {
				return c.TransactionsByPayee(ctx, "pay-2")
			},
			wantIDs: []string{"txn-1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := httpmock.NewMockTransport()
			transport.RegisterResponder(
				http.MethodGet,
				tt.path,
				httpmock.NewStringResponder(http.StatusOK, tt.body),
			)

			client := newTestClient(transport)
			client.SetBudgetID("bud-42")

			got, err := tt.fetch(context.Background(), client)
			if err != nil {
				t.Fatalf("fetch error = %v", err)
			}

			gotIDs := make([]string, 0, len(got))
			for _, txn := range got {
				gotIDs = append(gotIDs, txn.ID)
			}

			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("transaction IDs = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}
