package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/models"
)

//
// --- Admin Handlers (administrator-only routes) ---
//

// GetUsuarios is the handler for GET /api/admin/usuarios.
func (h *Handlers) GetUsuarios(c *gin.Context) {
	query := `
		SELECT id, nombre, email, rol, activo, fecha_creacion, ultimo_acceso
		FROM usuarios
		ORDER BY nombre
	`
	rows, err := h.DB.Query(query)
	if err != nil {
		h.serverError(c, "Error obteniendo usuarios", err)
		return
	}
	defer rows.Close()

	usuarios := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.Activo, &u.FechaCreacion, &u.UltimoAcceso); err != nil {
			h.serverError(c, "Error obteniendo usuarios", err)
			return
		}
		usuarios = append(usuarios, u)
	}

	c.JSON(http.StatusOK, usuarios)
}

// CreateUsuario is the handler for POST /api/admin/usuarios. The password is
// hashed before storage; the email is stored lowercased so lookups stay
// case-insensitive.
func (h *Handlers) CreateUsuario(c *gin.Context) {
	var input models.CreateUsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre, email y contraseña son requeridos"})
		return
	}

	rol := input.Rol
	if rol == "" {
		rol = models.RolDocente
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		h.serverError(c, "Error creando usuario", err)
		return
	}

	email := strings.ToLower(input.Email)
	res, err := h.DB.Exec(
		"INSERT INTO usuarios (nombre, email, password_hash, rol) VALUES (?, ?, ?, ?)",
		input.Nombre, email, password.Hash, rol,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un usuario con ese email"})
			return
		}
		h.serverError(c, "Error creando usuario", err)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		h.serverError(c, "Error creando usuario", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"usuario": gin.H{
			"id":     id,
			"nombre": input.Nombre,
			"email":  email,
			"rol":    rol,
		},
	})
}
