package middleware

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/models"
)

// CtxCategoryPermission holds the caller's PermisoCategoria row for the
// category named in the route, when the check was not bypassed.
const CtxCategoryPermission = "categoryPermissions"

// ConsultarPermisoCategoria reads the (rol, categoria) permission row.
// Administrators never reach this query: they bypass the table entirely.
// A missing row denies access, same as a false flag.
func ConsultarPermisoCategoria(db *sql.DB, rol string, categoriaID string) (*models.PermisoCategoria, error) {
	permiso := &models.PermisoCategoria{Rol: rol}
	query := `
		SELECT id_categoria, puede_ver, puede_editar
		FROM permisos_categoria
		WHERE rol = ? AND id_categoria = ?
	`
	err := db.QueryRow(query, rol, categoriaID).Scan(
		&permiso.IDCategoria,
		&permiso.PuedeVer,
		&permiso.PuedeEditar,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return permiso, nil
}

// CategoryPermissionMiddleware enforces puede_ver for the :categoryId route
// param. It runs before any handler work, so a denial leaves no side effects.
func CategoryPermissionMiddleware(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol := c.GetString(CtxRol)
		if rol == models.RolAdministrador {
			c.Next()
			return
		}

		permiso, err := ConsultarPermisoCategoria(db, rol, c.Param("categoryId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error verificando permisos"})
			c.Abort()
			return
		}

		if permiso == nil || !permiso.PuedeVer {
			c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para acceder a esta categoría"})
			c.Abort()
			return
		}

		c.Set(CtxCategoryPermission, permiso)
		c.Next()
	}
}
