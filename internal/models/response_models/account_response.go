package response_models

// AuthUser is the provider's user record, reduced to what callers see.
type AuthUser struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// AuthResult carries what the provider returned for a sign-up or sign-in.
// AccessToken is empty when sign-up requires email confirmation.
type AuthResult struct {
	AccessToken string   `json:"access_token,omitempty"`
	TokenType   string   `json:"token_type,omitempty"`
	FirstName   string   `json:"first_name"`
	User        AuthUser `json:"user"`
}
