package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/settleline/bizledger/internal/middleware"
)

// identityFromContext pulls the authenticated user and tenant out of the
// request context, aborting with 401 when either is missing. The auth
// middleware always sets both, so a miss means the route was wired without
// it.
func identityFromContext(c *gin.Context) (userID string, tenantID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	tenantID, ok = middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return userID, tenantID, true
}
