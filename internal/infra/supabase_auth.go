package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"factcheck/internal/models/request_models"
	"factcheck/internal/models/response_models"
	"factcheck/pkg/utils"
)

const authPath = "/auth/v1"

// SupabaseAuth forwards credentials to the Supabase auth (GoTrue) service.
// Provider types never leave this file.
type SupabaseAuth struct {
	client gotrue.Client
}

func NewSupabaseAuth(projectURL, anonKey string) *SupabaseAuth {
	client := gotrue.New("", anonKey).WithCustomGoTrueURL(projectURL + authPath)
	return &SupabaseAuth{client: client}
}

func (a *SupabaseAuth) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := a.client.Signup(types.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Data:     map[string]interface{}{"name": req.Name},
	})
	if err != nil {
		return nil, providerError("signup", err)
	}

	result := &response_models.AuthResult{
		User:      toAuthUser(resp.User),
		FirstName: firstName(req.Name),
	}
	if resp.Session.AccessToken != "" {
		result.AccessToken = resp.Session.AccessToken
		result.TokenType = tokenType(resp.Session.TokenType)
	}
	return result, nil
}

func (a *SupabaseAuth) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := a.client.SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		return nil, providerError("sign in", err)
	}

	user := toAuthUser(resp.Session.User)
	name, _ := user.Metadata["name"].(string)

	return &response_models.AuthResult{
		AccessToken: resp.Session.AccessToken,
		TokenType:   tokenType(resp.Session.TokenType),
		FirstName:   firstName(name),
		User:        user,
	}, nil
}

func (a *SupabaseAuth) Logout(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := a.client.WithToken(accessToken).Logout(); err != nil {
		return providerError("logout", err)
	}
	return nil
}

const statusPrefix = "response status code "

// providerError separates 4xx rejections from the auth service from
// transport failures and provider outages. Only rejections become
// utils.ProviderError, carrying the message from the response body.
func providerError(op string, err error) error {
	rest, ok := strings.CutPrefix(err.Error(), statusPrefix)
	if !ok {
		return fmt.Errorf("auth %s: %w", op, err)
	}

	code, body, _ := strings.Cut(rest, ": ")
	status, convErr := strconv.Atoi(code)
	if convErr != nil || status < 400 || status >= 500 {
		return fmt.Errorf("auth %s: %w", op, err)
	}

	return &utils.ProviderError{Message: providerMessage(code, body)}
}

func providerMessage(code, body string) string {
	var payload struct {
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		for _, m := range []string{payload.Msg, payload.ErrorDescription, payload.Message, payload.Error} {
			if m != "" {
				return m
			}
		}
	}
	if body = strings.TrimSpace(body); body != "" {
		return body
	}
	return "auth provider responded with status " + code
}

func toAuthUser(u types.User) response_models.AuthUser {
	return response_models.AuthUser{
		ID:       u.ID.String(),
		Email:    u.Email,
		Metadata: u.UserMetadata,
	}
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func tokenType(t string) string {
	if t == "" {
		return "bearer"
	}
	return strings.ToLower(t)
}
