package response

import "time"

type LoginResponse struct {
	Username    string    `json:"username"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type MeResponse struct {
	Username string `json:"username"`
}
