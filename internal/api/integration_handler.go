package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/utils"
)

//go:generate mockery --name IntegrationService --output ../mocks
type IntegrationService interface {
	InitiateOAuth(ctx context.Context, userID int64, provider domain.AdProvider) (string, error)
	HandleCallback(ctx context.Context, provider domain.AdProvider, code, state string) (*dto.IntegrationResponse, error)
	Get(ctx context.Context, userID int64, provider domain.AdProvider) (*dto.IntegrationResponse, error)
	Delete(ctx context.Context, userID int64, provider domain.AdProvider) error
	FacebookAdAccounts(ctx context.Context, userID int64) ([]dto.AdAccountResponse, error)
}

type IntegrationHandler struct {
	*BaseHandler
	service IntegrationService
}

func NewIntegrationHandler(service IntegrationService, base *BaseHandler) *IntegrationHandler {
	return &IntegrationHandler{BaseHandler: base, service: service}
}

// Initiate godoc
// @Summary Start the OAuth flow for an ad platform
// @Description Redirects the caller to the provider consent screen
// @Tags integrations
// @Security BearerAuth
// @Param provider path string true "Ad platform" Enums(facebook, google)
// @Success 302
// @Failure 400 {object} dto.ErrorResponse
// @Router /integrations/{provider}/initiate [get]
func (h *IntegrationHandler) Initiate(c *gin.Context) {
	provider, err := h.pathProvider(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(h.RequestCtx(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	authURL, err := h.service.InitiateOAuth(h.RequestCtx(c), userID, provider)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback godoc
// @Summary OAuth redirect target for an ad platform
// @Description Exchanges the authorization code and stores the resulting credentials
// @Tags integrations
// @Produce json
// @Param provider path string true "Ad platform" Enums(facebook, google)
// @Param code query string true "Authorization code issued by the provider"
// @Param state query string true "Opaque state issued during initiate"
// @Success 200 {object} dto.SuccessResponse{registers=dto.IntegrationResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /integrations/{provider}/callback [get]
func (h *IntegrationHandler) Callback(c *gin.Context) {
	provider, err := h.pathProvider(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.badRequest(c, domain.NewValidationError("query", "code and state query parameters are required"))
		return
	}

	resp, err := h.service.HandleCallback(h.RequestCtx(c), provider, code, state)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// GetIntegration godoc
// @Summary Get the caller's integration with an ad platform
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Ad platform" Enums(facebook, google)
// @Success 200 {object} dto.SuccessResponse{registers=dto.IntegrationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /integrations/{provider} [get]
func (h *IntegrationHandler) GetIntegration(c *gin.Context) {
	provider, err := h.pathProvider(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(h.RequestCtx(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp, err := h.service.Get(h.RequestCtx(c), userID, provider)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, resp)
}

// DeleteIntegration godoc
// @Summary Disconnect the caller's integration with an ad platform
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Param provider path string true "Ad platform" Enums(facebook, google)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /integrations/{provider} [delete]
func (h *IntegrationHandler) DeleteIntegration(c *gin.Context) {
	provider, err := h.pathProvider(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(h.RequestCtx(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), userID, provider); err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, nil)
}

// FacebookAdAccounts godoc
// @Summary List the caller's Facebook ad accounts
// @Description Requires a connected, non-expired Facebook integration
// @Tags integrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse{registers=[]dto.AdAccountResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /facebook/ad-accounts [get]
func (h *IntegrationHandler) FacebookAdAccounts(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(h.RequestCtx(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	accounts, err := h.service.FacebookAdAccounts(h.RequestCtx(c), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respond(c, http.StatusOK, accounts)
}

// pathProvider accepts the short route segment (facebook, google) as well
// as the stored provider value (facebook_ads, google_ads).
func (h *BaseHandler) pathProvider(c *gin.Context) (domain.AdProvider, error) {
	switch c.Param("provider") {
	case "facebook":
		return domain.AdProviderFacebook, nil
	case "google":
		return domain.AdProviderGoogle, nil
	}
	return domain.ParseAdProvider(c.Param("provider"))
}
