package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"factcheck/internal/models/request_models"
	"factcheck/internal/services"
	"factcheck/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user with the auth provider
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, request_models.BindingErrorDetail(err))
		return
	}

	result, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		respondProviderError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondSuccess(c, result, "Registration successful. Please check your email for verification.")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate with the auth provider and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, request_models.BindingErrorDetail(err))
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		respondProviderError(c, http.StatusUnauthorized, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the caller's session with the auth provider
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	if err := a.accountService.Logout(c.Request.Context(), c.GetString("access_token")); err != nil {
		respondProviderError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondSuccess(c, nil, "Successfully logged out")
}

// respondProviderError relays the provider's message with status; anything
// that did not come from the provider goes through HandleServiceError.
func respondProviderError(c *gin.Context, status int, err error) {
	var providerErr *utils.ProviderError
	if errors.As(err, &providerErr) {
		utils.RespondError(c, status, providerErr.Message)
		return
	}
	utils.HandleServiceError(c, err)
}
