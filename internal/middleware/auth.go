package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/auth"
	"github.com/salleinventory/salleinventory-golang/internal/models"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
	CtxRol    = "userRol"
	CtxNombre = "userNombre"
)

// AuthMiddleware validates the bearer token on every protected route. The
// token is self-contained, so no DB lookup happens here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de acceso requerido"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de acceso requerido"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRol, claims.Rol)
		c.Set(CtxNombre, claims.Nombre)
		c.Next()
	}
}

// AdminMiddleware allows only administrators. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRol) != models.RolAdministrador {
			c.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AulaEditorMiddleware gates room creation/edition: administrators and
// supervisors only. This is the coarse check, separate from the per-category
// permission rows.
func AulaEditorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !models.PuedeGestionarAulas(c.GetString(CtxRol)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para gestionar aulas"})
			c.Abort()
			return
		}
		c.Next()
	}
}
