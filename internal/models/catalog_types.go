package models

import (
	"encoding/json"
	"fmt"
)

// --- Domain Models ---

type Categoria struct {
	ID           int64   `json:"id" db:"id"`
	Nombre       string  `json:"nombre" db:"nombre"`
	Descripcion  *string `json:"descripcion,omitempty" db:"descripcion"`
	Icono        *string `json:"icono,omitempty" db:"icono"`
	OrdenDisplay int     `json:"orden_display" db:"orden_display"`
	Activa       bool    `json:"-" db:"activa"`
}

type Subcategoria struct {
	ID              int64   `json:"id" db:"id"`
	IDCategoria     int64   `json:"id_categoria" db:"id_categoria"`
	Nombre          string  `json:"nombre" db:"nombre"`
	Descripcion     *string `json:"descripcion,omitempty" db:"descripcion"`
	UnidadMedida    *string `json:"unidad_medida,omitempty" db:"unidad_medida"`
	PermiteCantidad bool    `json:"permite_cantidad" db:"permite_cantidad"`
	CamposExtra     *string `json:"campos_extra,omitempty" db:"campos_extra"`
	OrdenDisplay    int     `json:"orden_display" db:"orden_display"`
}

// --- Campos Extra ---
//
// campos_extra is stored as a JSON object mapping field name to either a
// plain input kind ("text", "number") or a list of allowed choices:
//
//	{"marca": "text", "pulgadas": "number", "panel": ["LED", "LCD"]}
//
// Unknown string kinds are passed through untouched so the client can render
// them as plain text inputs.

const (
	CampoTexto    = "text"
	CampoNumerico = "number"
	CampoOpciones = "choice"
)

// CampoExtra is one declared specification field of a subcategory.
type CampoExtra struct {
	Tipo     string   `json:"tipo"`
	Opciones []string `json:"opciones,omitempty"` // only for CampoOpciones
}

// ParseCamposExtra decodes the campos_extra blob of a subcategory. A nil or
// empty blob yields an empty map.
func ParseCamposExtra(raw *string) (map[string]CampoExtra, error) {
	campos := map[string]CampoExtra{}
	if raw == nil || *raw == "" {
		return campos, nil
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil {
		return nil, fmt.Errorf("campos_extra inválido: %w", err)
	}

	for nombre, valor := range decoded {
		var kind string
		if err := json.Unmarshal(valor, &kind); err == nil {
			campos[nombre] = CampoExtra{Tipo: kind}
			continue
		}

		var opciones []string
		if err := json.Unmarshal(valor, &opciones); err == nil {
			campos[nombre] = CampoExtra{Tipo: CampoOpciones, Opciones: opciones}
			continue
		}

		return nil, fmt.Errorf("campos_extra: campo %q no es ni tipo ni lista de opciones", nombre)
	}

	return campos, nil
}
