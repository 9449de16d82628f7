package models

// PermisoCategoria is one row of the static permisos_categoria table, keyed
// by (rol, id_categoria). The table is configuration data: nothing in the API
// mutates it.
type PermisoCategoria struct {
	Rol         string `json:"rol" db:"rol"`
	IDCategoria int64  `json:"id_categoria" db:"id_categoria"`
	PuedeVer    bool   `json:"puede_ver" db:"puede_ver"`
	PuedeEditar bool   `json:"puede_editar" db:"puede_editar"`
}

// PuedeGestionarAulas is the coarse room-level gate: only administrators and
// supervisors may create or modify aulas. This is separate from the per
// category permisos_categoria rows.
func PuedeGestionarAulas(rol string) bool {
	return rol == RolAdministrador || rol == RolSupervisor
}
