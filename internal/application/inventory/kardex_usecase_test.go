package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	appinv "github.com/jhoicas/Gmao-api/internal/application/inventory"
	"github.com/jhoicas/Gmao-api/internal/domain/entity"
)

func TestBuildKardexRows_SaldoAcumulado(t *testing.T) {
	movs := []*entity.ItemMovement{
		{Type: entity.MovementTypeEntry, Quantity: 20},
		{Type: entity.MovementTypeExit, Quantity: 16},
		{Type: entity.MovementTypeEntry, Quantity: 5},
	}

	rows := appinv.BuildKardexRows(movs)

	assert.Len(t, rows, 3)
	assert.Equal(t, 20, rows[0].Balance)
	assert.Equal(t, 4, rows[1].Balance)
	assert.Equal(t, 9, rows[2].Balance)
}

func TestBuildKardexRows_Vacio(t *testing.T) {
	assert.Empty(t, appinv.BuildKardexRows(nil))
}
