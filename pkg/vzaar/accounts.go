package vzaar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AccountDetails returns the account type identified by account.
func (c *Client) AccountDetails(ctx context.Context, account int64) (map[string]any, error) {
	endpoint := fmt.Sprintf("accounts/%d.json", account)
	body, err := c.do(ctx, call{method: http.MethodGet, endpoint: endpoint})
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := decodeJSON(endpoint, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserDetails returns the public profile of username (the login name, not an email address).
func (c *Client) UserDetails(ctx context.Context, username string) (map[string]any, error) {
	endpoint := fmt.Sprintf("users/%s.json", url.PathEscape(username))
	body, err := c.do(ctx, call{method: http.MethodGet, endpoint: endpoint})
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := decodeJSON(endpoint, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
