package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "tornilleria", Fold("Tornillería"))
	assert.Equal(t, "camion grua", Fold("CAMIÓN GRÚA"))
	assert.Equal(t, "filtro hvac", Fold("filtro hvac"), "sin acentos debe pasar tal cual")
	assert.Equal(t, "", Fold(""))
}
