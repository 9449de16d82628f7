package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/auth"
	"github.com/salleinventory/salleinventory-golang/internal/middleware"
	"github.com/salleinventory/salleinventory-golang/internal/models"
)

// Login is the handler for POST /api/login.
func (h *Handlers) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son requeridos"})
		return
	}

	// Email lookup is case-insensitive; inactive accounts cannot log in.
	var user models.Usuario
	query := `
		SELECT id, nombre, email, password_hash, rol
		FROM usuarios
		WHERE email = ? AND activo = 1
	`
	err := h.DB.QueryRow(query, strings.ToLower(input.Email)).Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.PasswordHash,
		&user.Rol,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
			return
		}
		h.serverError(c, "Error interno del servidor", err)
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		h.serverError(c, "Error interno del servidor", err)
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
		return
	}

	// Record the login. Not worth failing the request over.
	if _, err := h.DB.Exec("UPDATE usuarios SET ultimo_acceso = ? WHERE id = ?", time.Now(), user.ID); err != nil {
		h.serverError(c, "Error interno del servidor", err)
		return
	}

	token, err := auth.GenerateToken(&user)
	if err != nil {
		h.serverError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":     user.ID,
			"nombre": user.Nombre,
			"email":  user.Email,
			"rol":    user.Rol,
		},
	})
}

// Me is the handler for GET /api/me. It re-reads the stored row so a user
// deactivated after token issue gets a 404 here.
func (h *Handlers) Me(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	var user models.Usuario
	query := `
		SELECT id, nombre, email, rol, ultimo_acceso, fecha_creacion
		FROM usuarios
		WHERE id = ? AND activo = 1
	`
	err := h.DB.QueryRow(query, userID).Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.Rol,
		&user.UltimoAcceso,
		&user.FechaCreacion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		h.serverError(c, "Error interno del servidor", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
