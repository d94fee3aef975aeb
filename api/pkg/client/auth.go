package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/system"
	"github.com/99-NinetyNine/cv-jd-matching-sub000/api/pkg/types"
)

func (c *CVMatchClient) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if _, err := types.ValidateAccountRole(string(req.Role), true); err != nil {
		return nil, err
	}

	bts, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var registerResp types.RegisterResponse
	err = c.makeRequest(ctx, http.MethodPost, "/auth/register", bytes.NewBuffer(bts), &registerResp)
	if err != nil {
		return nil, err
	}

	return &registerResp, nil
}

// Token exchanges credentials for a bearer token. The endpoint speaks the
// OAuth2 password grant, so this is the one form-encoded call in the API.
func (c *CVMatchClient) Token(ctx context.Context, username, password string) (*types.TokenResponse, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, system.URL(c.options, "/token"), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bts, _ := io.ReadAll(resp.Body)
		return nil, system.NewHTTPResponseError(resp.StatusCode, bts)
	}

	var tokenResp types.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	return &tokenResp, nil
}
