package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseCamposExtra(t *testing.T) {
	t.Run("blob vacío o nulo", func(t *testing.T) {
		campos, err := ParseCamposExtra(nil)
		require.NoError(t, err)
		assert.Empty(t, campos)

		campos, err = ParseCamposExtra(strPtr(""))
		require.NoError(t, err)
		assert.Empty(t, campos)
	})

	t.Run("tipos planos y lista de opciones", func(t *testing.T) {
		raw := `{"marca": "text", "pulgadas": "number", "panel": ["LED", "LCD"]}`
		campos, err := ParseCamposExtra(strPtr(raw))
		require.NoError(t, err)
		require.Len(t, campos, 3)

		assert.Equal(t, CampoExtra{Tipo: CampoTexto}, campos["marca"])
		assert.Equal(t, CampoExtra{Tipo: CampoNumerico}, campos["pulgadas"])
		assert.Equal(t, CampoExtra{Tipo: CampoOpciones, Opciones: []string{"LED", "LCD"}}, campos["panel"])
	})

	t.Run("tipos desconocidos pasan como están", func(t *testing.T) {
		campos, err := ParseCamposExtra(strPtr(`{"serial": "barcode"}`))
		require.NoError(t, err)
		assert.Equal(t, "barcode", campos["serial"].Tipo)
	})

	t.Run("JSON inválido", func(t *testing.T) {
		_, err := ParseCamposExtra(strPtr(`{"marca": `))
		assert.Error(t, err)
	})

	t.Run("valor que no es tipo ni opciones", func(t *testing.T) {
		_, err := ParseCamposExtra(strPtr(`{"marca": 42}`))
		assert.Error(t, err)
	})
}
