package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

// VerifyUser returns the profile bound to the current bearer credential.
func (c *Client) VerifyUser(ctx context.Context) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := c.get(ctx, &user, nil, "user-auth", "verify"); err != nil {
		return nil, err
	}
	return &user, nil
}

// GoogleLogin exchanges an identity-provider credential for a bearer token.
func (c *Client) GoogleLogin(ctx context.Context, credential string) (*models.LoginResponse, error) {
	body := map[string]string{"credential": credential}
	var resp models.LoginResponse
	if err := c.send(ctx, http.MethodPost, body, &resp, "user-auth", "google-login"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile stores name and phone and returns the normalised profile.
func (c *Client) UpdateProfile(ctx context.Context, name, phone string) (*models.UserProfile, error) {
	var user models.UserProfile
	body := models.ProfileUpdate{Name: name, Phone: phone}
	if err := c.send(ctx, http.MethodPut, body, &user, "user-auth", "update-profile"); err != nil {
		return nil, err
	}
	return &user, nil
}
