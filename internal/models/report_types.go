package models

import "math"

// --- Reporting Models ---
//
// Reports are recomputed on every request from the latest snapshot of each
// active room. The percentage math lives here (not in SQL) so it is shared by
// all three report endpoints and unit-testable.

type ResumenGeneral struct {
	TotalAulas          int     `json:"total_aulas"`
	AulasConInventario  int     `json:"aulas_con_inventario"`
	TotalItems          int     `json:"total_items"`
	ItemsBuenos         int     `json:"items_buenos"`
	ItemsRegulares      int     `json:"items_regulares"`
	ItemsMalos          int     `json:"items_malos"`
	ItemsRotos          int     `json:"items_rotos"`
	PorcentajeOperativo float64 `json:"porcentaje_operativo"`
}

type ItemCritico struct {
	Aula                string  `json:"aula"`
	AulaNombre          string  `json:"aula_nombre"`
	Categoria           string  `json:"categoria"`
	Subcategoria        string  `json:"subcategoria"`
	CantidadTotal       int     `json:"cantidad_total"`
	CantidadMalo        int     `json:"cantidad_malo"`
	CantidadRoto        int     `json:"cantidad_roto"`
	PorcentajeProblemas float64 `json:"porcentaje_problemas"`
}

type ResumenAula struct {
	IDAula              int64   `json:"id_aula"`
	Codigo              string  `json:"codigo"`
	Nombre              string  `json:"nombre"`
	Edificio            *string `json:"edificio,omitempty"`
	TotalItems          int     `json:"total_items"`
	ItemsBuenos         int     `json:"items_buenos"`
	ItemsRegulares      int     `json:"items_regulares"`
	ItemsMalos          int     `json:"items_malos"`
	ItemsRotos          int     `json:"items_rotos"`
	PorcentajeOperativo float64 `json:"porcentaje_operativo"`
}

// PorcentajeOperativo is (buenos+regulares)/total as a percentage, rounded to
// one decimal. Zero total yields 0 rather than a division fault.
func PorcentajeOperativo(buenos, regulares, total int) float64 {
	if total <= 0 {
		return 0
	}
	return redondear1(float64(buenos+regulares) / float64(total) * 100)
}

// PorcentajeProblemas is (malos+rotos)/total as a percentage, rounded to one
// decimal, 0 when total is 0.
func PorcentajeProblemas(malos, rotos, total int) float64 {
	if total <= 0 {
		return 0
	}
	return redondear1(float64(malos+rotos) / float64(total) * 100)
}

func redondear1(v float64) float64 {
	return math.Round(v*10) / 10
}
