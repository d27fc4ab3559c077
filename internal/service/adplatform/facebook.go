package adplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sellerhub/backoffice-api/internal/config"
)

const (
	facebookDialogURL = "https://www.facebook.com/v19.0/dialog/oauth"
	facebookGraphURL  = "https://graph.facebook.com/v19.0"
	facebookScope     = "ads_management,ads_read,business_management"
)

// FacebookClient drives the Facebook Marketing API OAuth dance and account
// listing. Facebook issues no refresh token; long-lived access tokens are
// re-obtained by sending the user through the dialog again.
type FacebookClient struct {
	cfg        config.OAuthProviderConfig
	httpClient *http.Client
}

func NewFacebookClient(cfg config.OAuthProviderConfig) *FacebookClient {
	return &FacebookClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthorizationURL builds the dialog URL the user is redirected to.
func (c *FacebookClient) AuthorizationURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("scope", facebookScope)
	q.Set("state", state)
	return facebookDialogURL + "?" + q.Encode()
}

// ExchangeCode trades the callback code for an access token.
func (c *FacebookClient) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("client_secret", c.cfg.ClientSecret)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookGraphURL+"/oauth/access_token?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("facebook token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facebook token exchange failed: status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("facebook token exchange returned invalid JSON: %w", err)
	}
	if body.AccessToken == "" {
		return nil, fmt.Errorf("facebook token exchange returned no access token")
	}

	return &Token{
		AccessToken: body.AccessToken,
		ExpiresAt:   expiryFromSeconds(body.ExpiresIn),
	}, nil
}

// AdAccounts lists the ad accounts the token can manage.
func (c *FacebookClient) AdAccounts(ctx context.Context, accessToken string) ([]AdAccount, error) {
	q := url.Values{}
	q.Set("fields", "id,account_id,name,account_status,currency")
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookGraphURL+"/me/adaccounts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("facebook ad accounts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facebook ad accounts request failed: status %d", resp.StatusCode)
	}

	var body struct {
		Data []AdAccount `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("facebook ad accounts returned invalid JSON: %w", err)
	}

	return body.Data, nil
}
