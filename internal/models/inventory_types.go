package models

import (
	"fmt"
	"time"
)

// --- Domain Models ---

// Inventario is one immutable snapshot of a room's contents. A new submission
// always appends a new row; "current" is resolved by readers as the latest
// fecha_registro (ties broken by highest id).
type Inventario struct {
	ID            int64     `json:"id" db:"id"`
	IDAula        int64     `json:"id_aula" db:"id_aula"`
	IDUsuario     int64     `json:"id_usuario" db:"id_usuario"`
	FechaRegistro time.Time `json:"fecha_registro" db:"fecha_registro"`
	Observaciones *string   `json:"observaciones,omitempty" db:"observaciones"`
	EstadoGeneral *string   `json:"estado_general,omitempty" db:"estado_general"`
}

// InventarioResumen extends Inventario with joined display metadata for the
// retrieval endpoint.
type InventarioResumen struct {
	Inventario
	RegistradoPor string `json:"registrado_por"`
	AulaCodigo    string `json:"aula_codigo"`
	AulaNombre    string `json:"aula_nombre"`
}

// DetalleInventario is one subcategory's quantity breakdown inside a
// snapshot. Rows are written once, inside the snapshot's transaction, and
// never mutated afterwards.
type DetalleInventario struct {
	ID               int64   `json:"id" db:"id"`
	IDInventario     int64   `json:"id_inventario" db:"id_inventario"`
	IDSubcategoria   int64   `json:"id_subcategoria" db:"id_subcategoria"`
	CantidadTotal    int     `json:"cantidad_total" db:"cantidad_total"`
	CantidadBueno    int     `json:"cantidad_bueno" db:"cantidad_bueno"`
	CantidadRegular  int     `json:"cantidad_regular" db:"cantidad_regular"`
	CantidadMalo     int     `json:"cantidad_malo" db:"cantidad_malo"`
	CantidadRoto     int     `json:"cantidad_roto" db:"cantidad_roto"`
	Especificaciones *string `json:"especificaciones,omitempty" db:"especificaciones"`
	Observaciones    *string `json:"observaciones,omitempty" db:"observaciones"`
}

// DetalleConMetadata joins a line item with its subcategory/category display
// metadata for the retrieval endpoint.
type DetalleConMetadata struct {
	DetalleInventario
	SubcategoriaNombre      string  `json:"subcategoria_nombre"`
	SubcategoriaDescripcion *string `json:"subcategoria_descripcion,omitempty"`
	UnidadMedida            *string `json:"unidad_medida,omitempty"`
	CamposExtra             *string `json:"campos_extra,omitempty"`
	CategoriaNombre         string  `json:"categoria_nombre"`
	CategoriaIcono          *string `json:"categoria_icono,omitempty"`
}

// --- API Input Structs ---

// DetalleInput is one submitted line item. Quantity fields left out of the
// JSON default to zero.
type DetalleInput struct {
	IDSubcategoria   int64             `json:"id_subcategoria" binding:"required"`
	CantidadTotal    int               `json:"cantidad_total"`
	CantidadBueno    int               `json:"cantidad_bueno"`
	CantidadRegular  int               `json:"cantidad_regular"`
	CantidadMalo     int               `json:"cantidad_malo"`
	CantidadRoto     int               `json:"cantidad_roto"`
	Especificaciones map[string]string `json:"especificaciones"`
	Observaciones    *string           `json:"observaciones"`
}

type CrearInventarioInput struct {
	Observaciones *string        `json:"observaciones"`
	Detalles      []DetalleInput `json:"detalles" binding:"required,min=1,dive"`
}

// ErrCantidades reports a line item whose quantities do not reconcile.
type ErrCantidades struct {
	IDSubcategoria int64
	Total          int
	Suma           int
}

func (e *ErrCantidades) Error() string {
	return fmt.Sprintf(
		"las cantidades de la subcategoría %d no cuadran: total %d, suma de estados %d",
		e.IDSubcategoria, e.Total, e.Suma,
	)
}

// Validar enforces the reconciliation invariant before anything touches the
// database: every quantity is non-negative and
// cantidad_total == bueno + regular + malo + roto.
func (d *DetalleInput) Validar() error {
	for _, q := range []int{d.CantidadTotal, d.CantidadBueno, d.CantidadRegular, d.CantidadMalo, d.CantidadRoto} {
		if q < 0 {
			return fmt.Errorf("las cantidades de la subcategoría %d no pueden ser negativas", d.IDSubcategoria)
		}
	}

	suma := d.CantidadBueno + d.CantidadRegular + d.CantidadMalo + d.CantidadRoto
	if d.CantidadTotal != suma {
		return &ErrCantidades{
			IDSubcategoria: d.IDSubcategoria,
			Total:          d.CantidadTotal,
			Suma:           suma,
		}
	}

	return nil
}
