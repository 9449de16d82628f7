package handlers

import (
	"database/sql"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/salleinventory/salleinventory-golang/internal/models"
)

//
// --- Report Handlers ---
//
// All three reports aggregate over the latest snapshot of each active room,
// recomputed per request. The latest snapshot is resolved with a correlated
// subquery (fecha_registro DESC, id DESC), matching how GetInventario defines
// "current".
//

// ultimoInventarioJoin picks the snapshot row that counts for an aula.
const ultimoInventarioJoin = `(
		SELECT i2.id FROM inventarios i2
		WHERE i2.id_aula = a.id
		ORDER BY i2.fecha_registro DESC, i2.id DESC
		LIMIT 1
	)`

// GetReporteResumen is the handler for GET /api/reportes/resumen.
func (h *Handlers) GetReporteResumen(c *gin.Context) {
	query := `
		SELECT
			COUNT(DISTINCT a.id) AS total_aulas,
			COUNT(DISTINCT i.id_aula) AS aulas_con_inventario,
			COALESCE(SUM(di.cantidad_total), 0) AS total_items,
			COALESCE(SUM(di.cantidad_bueno), 0) AS items_buenos,
			COALESCE(SUM(di.cantidad_regular), 0) AS items_regulares,
			COALESCE(SUM(di.cantidad_malo), 0) AS items_malos,
			COALESCE(SUM(di.cantidad_roto), 0) AS items_rotos
		FROM aulas a
		LEFT JOIN inventarios i ON i.id = ` + ultimoInventarioJoin + `
		LEFT JOIN detalles_inventario di ON di.id_inventario = i.id
		WHERE a.activa = 1
	`

	var resumen models.ResumenGeneral
	err := h.DB.QueryRow(query).Scan(
		&resumen.TotalAulas,
		&resumen.AulasConInventario,
		&resumen.TotalItems,
		&resumen.ItemsBuenos,
		&resumen.ItemsRegulares,
		&resumen.ItemsMalos,
		&resumen.ItemsRotos,
	)
	if err != nil {
		h.serverError(c, "Error generando resumen", err)
		return
	}

	resumen.PorcentajeOperativo = models.PorcentajeOperativo(
		resumen.ItemsBuenos, resumen.ItemsRegulares, resumen.TotalItems,
	)

	c.JSON(http.StatusOK, resumen)
}

// GetReporteCriticos is the handler for GET /api/reportes/criticos. An item
// is critical when its problem ratio exceeds UmbralCriticos.
func (h *Handlers) GetReporteCriticos(c *gin.Context) {
	query := `
		SELECT a.codigo, a.nombre, cat.nombre, s.nombre,
		       di.cantidad_total, di.cantidad_malo, di.cantidad_roto
		FROM aulas a
		JOIN inventarios i ON i.id = ` + ultimoInventarioJoin + `
		JOIN detalles_inventario di ON di.id_inventario = i.id
		JOIN subcategorias s ON di.id_subcategoria = s.id
		JOIN categorias cat ON s.id_categoria = cat.id
		WHERE a.activa = 1 AND di.cantidad_total > 0
	`
	rows, err := h.DB.Query(query)
	if err != nil {
		h.serverError(c, "Error obteniendo items críticos", err)
		return
	}
	defer rows.Close()

	criticos := []models.ItemCritico{}
	for rows.Next() {
		var item models.ItemCritico
		if err := rows.Scan(&item.Aula, &item.AulaNombre, &item.Categoria, &item.Subcategoria,
			&item.CantidadTotal, &item.CantidadMalo, &item.CantidadRoto); err != nil {
			h.serverError(c, "Error obteniendo items críticos", err)
			return
		}

		item.PorcentajeProblemas = models.PorcentajeProblemas(
			item.CantidadMalo, item.CantidadRoto, item.CantidadTotal,
		)
		if item.PorcentajeProblemas > h.UmbralCriticos {
			criticos = append(criticos, item)
		}
	}

	sort.Slice(criticos, func(i, j int) bool {
		a, b := criticos[i], criticos[j]
		if a.PorcentajeProblemas != b.PorcentajeProblemas {
			return a.PorcentajeProblemas > b.PorcentajeProblemas
		}
		if a.Aula != b.Aula {
			return a.Aula < b.Aula
		}
		return a.Categoria < b.Categoria
	})

	c.JSON(http.StatusOK, criticos)
}

// GetReporteAulas is the handler for GET /api/reportes/aulas: one rollup row
// per active room, worst operational percentage first.
func (h *Handlers) GetReporteAulas(c *gin.Context) {
	query := `
		SELECT a.id, a.codigo, a.nombre, a.edificio,
		       COALESCE(SUM(di.cantidad_total), 0) AS total_items,
		       COALESCE(SUM(di.cantidad_bueno), 0) AS items_buenos,
		       COALESCE(SUM(di.cantidad_regular), 0) AS items_regulares,
		       COALESCE(SUM(di.cantidad_malo), 0) AS items_malos,
		       COALESCE(SUM(di.cantidad_roto), 0) AS items_rotos
		FROM aulas a
		LEFT JOIN inventarios i ON i.id = ` + ultimoInventarioJoin + `
		LEFT JOIN detalles_inventario di ON di.id_inventario = i.id
		WHERE a.activa = 1
		GROUP BY a.id, a.codigo, a.nombre, a.edificio
	`
	rows, err := h.DB.Query(query)
	if err != nil {
		h.serverError(c, "Error generando reporte de aulas", err)
		return
	}
	defer rows.Close()

	reporte := []models.ResumenAula{}
	for rows.Next() {
		var ra models.ResumenAula
		var edificio sql.NullString
		if err := rows.Scan(&ra.IDAula, &ra.Codigo, &ra.Nombre, &edificio,
			&ra.TotalItems, &ra.ItemsBuenos, &ra.ItemsRegulares, &ra.ItemsMalos, &ra.ItemsRotos); err != nil {
			h.serverError(c, "Error generando reporte de aulas", err)
			return
		}
		if edificio.Valid {
			ra.Edificio = &edificio.String
		}

		ra.PorcentajeOperativo = models.PorcentajeOperativo(ra.ItemsBuenos, ra.ItemsRegulares, ra.TotalItems)
		reporte = append(reporte, ra)
	}

	sort.Slice(reporte, func(i, j int) bool {
		a, b := reporte[i], reporte[j]
		if a.PorcentajeOperativo != b.PorcentajeOperativo {
			return a.PorcentajeOperativo < b.PorcentajeOperativo
		}
		return a.Codigo < b.Codigo
	})

	c.JSON(http.StatusOK, reporte)
}
