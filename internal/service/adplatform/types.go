// Package adplatform holds thin HTTP clients for the ad platforms' OAuth
// and reporting endpoints.
package adplatform

import "time"

// Token is the result of an OAuth code exchange or refresh.
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// AdAccount is one advertising account visible to the integration token.
type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Status    int    `json:"account_status"`
	Currency  string `json:"currency"`
}

func expiryFromSeconds(expiresIn int64) *time.Time {
	if expiresIn <= 0 {
		return nil
	}
	t := time.Now().Add(time.Duration(expiresIn) * time.Second)
	return &t
}
