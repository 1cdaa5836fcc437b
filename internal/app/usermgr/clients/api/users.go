package api

import (
	"context"
	"net/url"

	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
)

const usersEndpoint = "/api/users"

var ErrNoUserID = eris.New("user ID is required")

func userEndpoint(id string) string {
	return usersEndpoint + "/" + url.PathEscape(id)
}

// ListUsers retrieves the full users collection, in server order.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.sendRequest(ctx, get, usersEndpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to list users")
	}

	records, err := parseResponse[[]*models.User](body)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to list users")
	}

	// null elements carry no record and are skipped
	users := make([]models.User, 0, len(records))
	for _, u := range records {
		if u != nil {
			users = append(users, *u)
		}
	}
	return users, nil
}

// CreateUser creates a new user record.
func (c *Client) CreateUser(ctx context.Context, payload models.UserPayload) error {
	if _, err := c.sendRequest(ctx, post, usersEndpoint, payload); err != nil {
		return eris.Wrap(err, "Failed to create user")
	}
	return nil
}

// UpdateUser replaces name and email of an existing user record.
func (c *Client) UpdateUser(ctx context.Context, id string, payload models.UserPayload) error {
	if id == "" {
		return ErrNoUserID
	}
	if _, err := c.sendRequest(ctx, put, userEndpoint(id), payload); err != nil {
		return eris.Wrap(err, "Failed to update user")
	}
	return nil
}

// DeleteUser removes a user record.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrNoUserID
	}
	if _, err := c.sendRequest(ctx, del, userEndpoint(id), nil); err != nil {
		return eris.Wrap(err, "Failed to delete user")
	}
	return nil
}
