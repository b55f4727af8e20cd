package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/inventory"
)

func itemWithStock(entry, exit int) *entity.Item {
	return &entity.Item{EntryTotal: entry, ExitTotal: exit}
}

func TestCurrentStock_DerivadoDeAcumulados(t *testing.T) {
	assert.Equal(t, 20, itemWithStock(20, 0).CurrentStock())
	assert.Equal(t, 4, itemWithStock(20, 16).CurrentStock())
	// El stock puede quedar negativo si una edición correctiva salta la validación
	assert.Equal(t, -3, itemWithStock(5, 8).CurrentStock())
}

func TestEvaluateThresholds_DeshabilitadoNoDispara(t *testing.T) {
	item := itemWithStock(10, 9) // stock 1
	item.WarningThreshold = 5
	item.CriticalThreshold = 2

	assert.Empty(t, inventory.EvaluateThresholds(item),
		"sin flags habilitados no debe dispararse ninguna alerta")
}

func TestEvaluateThresholds_SoloWarning(t *testing.T) {
	item := itemWithStock(20, 14) // stock 6
	item.WarningEnabled = true
	item.WarningThreshold = 8
	item.CriticalEnabled = true
	item.CriticalThreshold = 5

	assert.Equal(t, []string{inventory.AlertWarning}, inventory.EvaluateThresholds(item))
}

func TestEvaluateThresholds_AmbasIndependientes(t *testing.T) {
	// stock 4 ≤ warning 8 y ≤ critical 5: las dos comprobaciones son
	// independientes y ambas disparan para el mismo movimiento
	item := itemWithStock(20, 16)
	item.WarningEnabled = true
	item.WarningThreshold = 8
	item.CriticalEnabled = true
	item.CriticalThreshold = 5

	assert.Equal(t, []string{inventory.AlertWarning, inventory.AlertCritical},
		inventory.EvaluateThresholds(item))
}

func TestEvaluateThresholds_IgualAlUmbralDispara(t *testing.T) {
	item := itemWithStock(5, 0)
	item.CriticalEnabled = true
	item.CriticalThreshold = 5

	assert.Equal(t, []string{inventory.AlertCritical}, inventory.EvaluateThresholds(item),
		"la comparación es ≤, el umbral exacto también dispara")
}

func TestTotalsConsistent(t *testing.T) {
	item := itemWithStock(20, 16)
	movs := []*entity.ItemMovement{
		{Type: entity.MovementTypeEntry, Quantity: 20},
		{Type: entity.MovementTypeExit, Quantity: 16},
	}
	assert.True(t, inventory.TotalsConsistent(item, movs))

	movs = append(movs, &entity.ItemMovement{Type: entity.MovementTypeExit, Quantity: 1})
	assert.False(t, inventory.TotalsConsistent(item, movs))
}
