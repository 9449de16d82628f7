package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/middleware"
	"github.com/salleinventory/salleinventory-golang/internal/models"
)

// GetCategorias is the handler for GET /api/categorias. Non-administrators
// only see categories their role has puede_ver on.
func (h *Handlers) GetCategorias(c *gin.Context) {
	rol := c.GetString(middleware.CtxRol)

	query := `
		SELECT c.id, c.nombre, c.descripcion, c.icono, c.orden_display
		FROM categorias c
		WHERE c.activa = 1
	`
	args := []interface{}{}

	if rol != models.RolAdministrador {
		query += `
			AND EXISTS (
				SELECT 1 FROM permisos_categoria pc
				WHERE pc.id_categoria = c.id
				AND pc.rol = ?
				AND pc.puede_ver = 1
			)
		`
		args = append(args, rol)
	}

	query += " ORDER BY c.orden_display, c.nombre"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.serverError(c, "Error obteniendo categorías", err)
		return
	}
	defer rows.Close()

	categorias := []models.Categoria{}
	for rows.Next() {
		var cat models.Categoria
		if err := rows.Scan(&cat.ID, &cat.Nombre, &cat.Descripcion, &cat.Icono, &cat.OrdenDisplay); err != nil {
			h.serverError(c, "Error obteniendo categorías", err)
			return
		}
		categorias = append(categorias, cat)
	}

	c.JSON(http.StatusOK, categorias)
}

// GetSubcategorias is the handler for GET /api/categorias/:categoryId/subcategorias.
// The route carries CategoryPermissionMiddleware, so by the time we run the
// caller is entitled to view this category.
func (h *Handlers) GetSubcategorias(c *gin.Context) {
	categoryID := c.Param("categoryId")

	query := `
		SELECT id, id_categoria, nombre, descripcion, unidad_medida,
		       permite_cantidad, campos_extra, orden_display
		FROM subcategorias
		WHERE id_categoria = ? AND activa = 1
		ORDER BY orden_display, nombre
	`
	rows, err := h.DB.Query(query, categoryID)
	if err != nil {
		h.serverError(c, "Error obteniendo subcategorías", err)
		return
	}
	defer rows.Close()

	subcategorias := []models.Subcategoria{}
	for rows.Next() {
		var s models.Subcategoria
		if err := rows.Scan(&s.ID, &s.IDCategoria, &s.Nombre, &s.Descripcion, &s.UnidadMedida,
			&s.PermiteCantidad, &s.CamposExtra, &s.OrdenDisplay); err != nil {
			h.serverError(c, "Error obteniendo subcategorías", err)
			return
		}

		// A malformed campos_extra blob is a data problem worth surfacing
		// before the client tries to render the form from it.
		if _, err := models.ParseCamposExtra(s.CamposExtra); err != nil {
			h.serverError(c, "Error obteniendo subcategorías", err)
			return
		}

		subcategorias = append(subcategorias, s)
	}

	c.JSON(http.StatusOK, subcategorias)
}
