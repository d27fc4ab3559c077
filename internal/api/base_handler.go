package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/service"
	"github.com/sellerhub/backoffice-api/internal/utils"
	pkgutils "github.com/sellerhub/backoffice-api/pkg/utils"
)

type BaseHandler struct {
	logger Logger
}

func NewBaseHandler(logger Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// Logger is the minimal logging surface handlers need.
type Logger interface {
	Errorf(format string, args ...interface{})
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// respond wraps registers in the success envelope.
func (h *BaseHandler) respond(c *gin.Context, status int, registers any) {
	c.JSON(status, dto.NewSuccessResponse(status, dto.ServiceFromPath(c.Request.URL.Path), "", registers))
}

func (h *BaseHandler) respondPaginated(c *gin.Context, registers any, paginate pkgutils.Pagination) {
	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ServiceFromPath(c.Request.URL.Path), registers, paginate))
}

// respondError maps service errors onto HTTP statuses at this one boundary.
// Unrecognized errors become an opaque 500 and are logged; their text never
// reaches the client.
func (h *BaseHandler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		message = vErr.Error()
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountDeactivated),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrInvalidOAuthState),
		errors.Is(err, service.ErrInvalidSignature):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrIntegrationNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrEmailAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrUnsupportedWebhookSource):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrIntegrationExpired):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	default:
		if h.logger != nil {
			h.logger.Errorf("Unhandled error on %s: %v", c.Request.URL.Path, err)
		}
	}

	c.JSON(status, dto.NewErrorResponse(status, dto.ServiceFromPath(c.Request.URL.Path), message))
}

// badRequest reports a binding failure in the error envelope.
func (h *BaseHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, dto.ServiceFromPath(c.Request.URL.Path), err.Error()))
}

// actor extracts the authenticated caller set by the auth middleware.
func (h *BaseHandler) actor(c *gin.Context) (service.Actor, error) {
	claims, err := utils.GetClaimsFromContext(h.RequestCtx(c))
	if err != nil {
		return service.Actor{}, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{
		UserID:  userID,
		IsAdmin: claims.Role == domain.RoleAdmin,
	}, nil
}
