package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorcentajeOperativo(t *testing.T) {
	// total 0 must yield 0, not a division fault
	assert.Equal(t, 0.0, PorcentajeOperativo(0, 0, 0))

	assert.Equal(t, 80.0, PorcentajeOperativo(60, 20, 100))
	assert.Equal(t, 100.0, PorcentajeOperativo(3, 0, 3))

	// rounded to one decimal: 2/3 -> 66.7
	assert.Equal(t, 66.7, PorcentajeOperativo(2, 0, 3))
}

func TestPorcentajeProblemas(t *testing.T) {
	assert.Equal(t, 0.0, PorcentajeProblemas(0, 0, 0))
	assert.Equal(t, 40.0, PorcentajeProblemas(2, 2, 10))
	assert.Equal(t, 33.3, PorcentajeProblemas(1, 0, 3))
}
