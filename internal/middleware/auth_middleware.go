package middleware

import (
	"errors"
	"strings"

	autherrors "go-sitepass/internal/auth/errors"
	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/contextutil"
	"go-sitepass/internal/shared/response"
	"go-sitepass/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextWorkerID  = "worker_id"
	ContextCompanyID = "company_id"
	ContextRole      = "role"
)

// TokenParser is satisfied by *token.Issuer.
type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// Authenticate resolves the bearer access token into an Actor. The actor is
// placed on the request context and its ids on the gin context for the
// limiter and RBAC middleware that follow.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			raw = ""
		}
		if raw == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				raw = cookie
			}
		}
		if raw == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := parser.Parse(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}
		if claims.WorkerID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		actor := contextutil.Actor{
			WorkerID:  claims.WorkerID,
			CompanyID: claims.CompanyID,
			SiteID:    claims.SiteID,
			TeamID:    claims.TeamID,
			Role:      claims.Role,
		}

		c.Set(ContextWorkerID, actor.WorkerID)
		c.Set(ContextCompanyID, actor.CompanyID)
		c.Set(ContextRole, actor.Role)

		ctx := contextutil.WithActor(c.Request.Context(), actor)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("worker_id", actor.WorkerID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole is a coarse gate for routes that do not warrant a policy entry.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abortWith(c, autherrors.ErrForbidden)
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
