package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/models"
)

// GetAulas is the handler for GET /api/aulas?activa=<bool>. Without the query
// param only active rooms are listed.
func (h *Handlers) GetAulas(c *gin.Context) {
	activa := c.DefaultQuery("activa", "true") == "true"

	query := `
		SELECT id, codigo, nombre, edificio, piso, capacidad, tipo, activa
		FROM aulas
		WHERE activa = ?
		ORDER BY codigo
	`
	rows, err := h.DB.Query(query, activa)
	if err != nil {
		h.serverError(c, "Error obteniendo aulas", err)
		return
	}
	defer rows.Close()

	aulas := []models.Aula{}
	for rows.Next() {
		var a models.Aula
		if err := rows.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Edificio, &a.Piso, &a.Capacidad, &a.Tipo, &a.Activa); err != nil {
			h.serverError(c, "Error obteniendo aulas", err)
			return
		}
		aulas = append(aulas, a)
	}

	c.JSON(http.StatusOK, aulas)
}

// CreateAula is the handler for POST /api/aulas (admin/supervisor only, the
// route carries AulaEditorMiddleware).
func (h *Handlers) CreateAula(c *gin.Context) {
	var input models.CreateAulaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código y nombre son requeridos"})
		return
	}

	codigo := strings.ToUpper(input.Codigo)
	tipo := input.Tipo
	if tipo == "" {
		tipo = "aula"
	}

	query := `
		INSERT INTO aulas (codigo, nombre, edificio, piso, capacidad, tipo)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := h.DB.Exec(query, codigo, input.Nombre, input.Edificio, input.Piso, input.Capacidad, tipo)
	if err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un aula con ese código"})
			return
		}
		h.serverError(c, "Error creando aula", err)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		h.serverError(c, "Error creando aula", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"aula": models.Aula{
			ID:        id,
			Codigo:    codigo,
			Nombre:    input.Nombre,
			Edificio:  input.Edificio,
			Piso:      input.Piso,
			Capacidad: input.Capacidad,
			Tipo:      tipo,
			Activa:    true,
		},
	})
}

// UpdateAula is the handler for PUT /api/aulas/:aulaId (admin/supervisor
// only). Codigo is immutable; deactivation happens through activa.
func (h *Handlers) UpdateAula(c *gin.Context) {
	aulaID := c.Param("aulaId")

	var input models.UpdateAulaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre es requerido"})
		return
	}

	tipo := input.Tipo
	if tipo == "" {
		tipo = "aula"
	}
	activa := true
	if input.Activa != nil {
		activa = *input.Activa
	}

	query := `
		UPDATE aulas
		SET nombre = ?, edificio = ?, piso = ?, capacidad = ?, tipo = ?, activa = ?
		WHERE id = ?
	`
	res, err := h.DB.Exec(query, input.Nombre, input.Edificio, input.Piso, input.Capacidad, tipo, activa, aulaID)
	if err != nil {
		h.serverError(c, "Error actualizando aula", err)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		h.serverError(c, "Error actualizando aula", err)
		return
	}
	if affected == 0 {
		// RowsAffected is also 0 on a no-op update, but the client always
		// sends the full row, so treat it as missing.
		var exists int
		if err := h.DB.QueryRow("SELECT 1 FROM aulas WHERE id = ?", aulaID).Scan(&exists); err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Aula no encontrada"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
