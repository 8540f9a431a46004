package ynab

import "fmt"

// RequestError reports a failed exchange with the API: either a non-2xx
// response (StatusCode and Body set) or a transport failure (Err set,
// StatusCode zero).
type RequestError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ynab: request failed: %v", e.Err)
	}

	return fmt.Sprintf("ynab: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NotFoundError reports a name lookup that matched nothing.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("ynab: no %s found", e.Resource)
	}

	return fmt.Sprintf("ynab: no %s named %q", e.Resource, e.Name)
}
