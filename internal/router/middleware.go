package router

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/models"
)

const (
	sessionKindKey = "principal_kind"
	sessionIDKey   = "principal_id"

	principalContextKey = "principal"
)

// PrincipalResolver resolves a session's (kind, id) pair against the
// matching principal store.
type PrincipalResolver func(ctx context.Context, kind, id string) (*models.Principal, error)

// RequireRoles gates a route to sessions whose resolved principal carries
// one of the allowed roles. No session identity is 401; a stale identity or
// a role outside the allow list is 403.
func RequireRoles(resolve PrincipalResolver, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		kind, _ := session.Get(sessionKindKey).(string)
		id, _ := session.Get(sessionIDKey).(string)

		if kind == "" || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				global.ErrorResponse("Unauthorized. Login required.", nil))
			return
		}

		principal, err := resolve(c.Request.Context(), kind, id)
		if err != nil && err != mongo.ErrNoDocuments {
			// a store failure is not a permissions problem
			log.Printf("Error resolving session principal: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				global.ErrorResponse("Internal server error", nil))
			return
		}
		if principal == nil || !roleAllowed(principal.Role, allowedRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				global.ErrorResponse("Access forbidden. Insufficient permissions.", nil))
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// setSessionPrincipal binds the caller to a tagged identity for the rest of
// the session.
func setSessionPrincipal(c *gin.Context, kind, id string) error {
	session := sessions.Default(c)
	session.Set(sessionKindKey, kind)
	session.Set(sessionIDKey, id)
	return session.Save()
}

func principalFromContext(c *gin.Context) *models.Principal {
	if v, ok := c.Get(principalContextKey); ok {
		if p, ok := v.(*models.Principal); ok {
			return p
		}
	}
	return nil
}
