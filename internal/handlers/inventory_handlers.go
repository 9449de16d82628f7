package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/middleware"
	"github.com/salleinventory/salleinventory-golang/internal/models"
)

//
// --- Inventory Handlers ---
//
// A submission writes one inventarios row plus N detalles_inventario rows as
// a single transaction. Validation runs to completion before the transaction
// starts, so a rejected payload leaves zero rows behind.
//

// CrearInventario is the handler for POST /api/aulas/:aulaId/inventario.
func (h *Handlers) CrearInventario(c *gin.Context) {
	aulaID := c.Param("aulaId")
	userID := c.GetInt64(middleware.CtxUserID)

	// 1. --- Bind & Validate JSON ---
	var input models.CrearInventarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Detalles de inventario requeridos"})
		return
	}

	// 2. --- Reconciliation Check (before any persistence) ---
	// The client mirrors this check for responsiveness but is never trusted.
	for i := range input.Detalles {
		if err := input.Detalles[i].Validar(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// 3. --- Begin Transaction ---
	tx, err := h.DB.BeginTx(c, nil)
	if err != nil {
		h.serverError(c, "Error guardando inventario", err)
		return
	}
	defer tx.Rollback() // Safety net

	// 4. --- Insert Snapshot Header ---
	res, err := tx.Exec(
		"INSERT INTO inventarios (id_aula, id_usuario, observaciones) VALUES (?, ?, ?)",
		aulaID, userID, input.Observaciones,
	)
	if err != nil {
		h.serverError(c, "Error guardando inventario", err)
		return
	}

	inventarioID, err := res.LastInsertId()
	if err != nil {
		h.serverError(c, "Error guardando inventario", err)
		return
	}

	// 5. --- Insert Line Items ---
	// Any failure here (e.g. FK violation on an unknown subcategory) rolls
	// back the header too via the deferred Rollback.
	detalleQuery := `
		INSERT INTO detalles_inventario
		(id_inventario, id_subcategoria, cantidad_total, cantidad_bueno,
		 cantidad_regular, cantidad_malo, cantidad_roto, especificaciones, observaciones)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, detalle := range input.Detalles {
		especificaciones, err := serializarEspecificaciones(detalle.Especificaciones)
		if err != nil {
			h.serverError(c, "Error guardando inventario", err)
			return
		}

		_, err = tx.Exec(detalleQuery,
			inventarioID,
			detalle.IDSubcategoria,
			detalle.CantidadTotal,
			detalle.CantidadBueno,
			detalle.CantidadRegular,
			detalle.CantidadMalo,
			detalle.CantidadRoto,
			especificaciones,
			detalle.Observaciones,
		)
		if err != nil {
			h.serverError(c, "Error guardando inventario", err)
			return
		}
	}

	// 6. --- Commit ---
	if err := tx.Commit(); err != nil {
		h.serverError(c, "Error guardando inventario", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"inventario_id": inventarioID,
		"message":       "Inventario guardado correctamente",
	})
}

// serializarEspecificaciones stores the spec blob as JSON text, NULL when the
// submission carried none.
func serializarEspecificaciones(especificaciones map[string]string) (*string, error) {
	if len(especificaciones) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(especificaciones)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}

// GetInventario is the handler for GET /api/aulas/:aulaId/inventario. It
// returns the latest snapshot (fecha_registro DESC, id DESC) with its full
// line-item set; a room with no snapshots yet is a valid empty result.
func (h *Handlers) GetInventario(c *gin.Context) {
	aulaID := c.Param("aulaId")

	var inv models.InventarioResumen
	invQuery := `
		SELECT i.id, i.id_aula, i.id_usuario, i.fecha_registro, i.observaciones, i.estado_general,
		       u.nombre AS registrado_por,
		       a.codigo AS aula_codigo, a.nombre AS aula_nombre
		FROM inventarios i
		JOIN usuarios u ON i.id_usuario = u.id
		JOIN aulas a ON i.id_aula = a.id
		WHERE i.id_aula = ?
		ORDER BY i.fecha_registro DESC, i.id DESC
		LIMIT 1
	`
	err := h.DB.QueryRow(invQuery, aulaID).Scan(
		&inv.ID, &inv.IDAula, &inv.IDUsuario, &inv.FechaRegistro, &inv.Observaciones, &inv.EstadoGeneral,
		&inv.RegistradoPor, &inv.AulaCodigo, &inv.AulaNombre,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusOK, gin.H{
				"aula":       nil,
				"inventario": nil,
				"detalles":   []models.DetalleConMetadata{},
			})
			return
		}
		h.serverError(c, "Error obteniendo inventario", err)
		return
	}

	detQuery := `
		SELECT di.id, di.id_inventario, di.id_subcategoria,
		       di.cantidad_total, di.cantidad_bueno, di.cantidad_regular,
		       di.cantidad_malo, di.cantidad_roto, di.especificaciones, di.observaciones,
		       s.nombre AS subcategoria_nombre,
		       s.descripcion AS subcategoria_descripcion,
		       s.unidad_medida,
		       s.campos_extra,
		       c.nombre AS categoria_nombre,
		       c.icono AS categoria_icono
		FROM detalles_inventario di
		JOIN subcategorias s ON di.id_subcategoria = s.id
		JOIN categorias c ON s.id_categoria = c.id
		WHERE di.id_inventario = ?
		ORDER BY c.orden_display, s.orden_display
	`
	rows, err := h.DB.Query(detQuery, inv.ID)
	if err != nil {
		h.serverError(c, "Error obteniendo inventario", err)
		return
	}
	defer rows.Close()

	detalles := []models.DetalleConMetadata{}
	for rows.Next() {
		var d models.DetalleConMetadata
		if err := rows.Scan(
			&d.ID, &d.IDInventario, &d.IDSubcategoria,
			&d.CantidadTotal, &d.CantidadBueno, &d.CantidadRegular,
			&d.CantidadMalo, &d.CantidadRoto, &d.Especificaciones, &d.Observaciones,
			&d.SubcategoriaNombre, &d.SubcategoriaDescripcion, &d.UnidadMedida, &d.CamposExtra,
			&d.CategoriaNombre, &d.CategoriaIcono,
		); err != nil {
			h.serverError(c, "Error obteniendo inventario", err)
			return
		}
		detalles = append(detalles, d)
	}

	c.JSON(http.StatusOK, gin.H{
		"inventario": inv,
		"detalles":   detalles,
	})
}
