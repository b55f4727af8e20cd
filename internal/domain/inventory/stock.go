package inventory

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// Severidades de alerta de stock.
const (
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// EvaluateThresholds devuelve las severidades de alerta que dispara el stock
// actual de un item. Las comprobaciones warning y critical son independientes:
// un mismo movimiento puede disparar ambas.
func EvaluateThresholds(item *entity.Item) []string {
	stock := item.CurrentStock()
	var alerts []string
	if item.WarningEnabled && stock <= item.WarningThreshold {
		alerts = append(alerts, AlertWarning)
	}
	if item.CriticalEnabled && stock <= item.CriticalThreshold {
		alerts = append(alerts, AlertCritical)
	}
	return alerts
}

// TotalsConsistent verifica que los acumulados de un item casan con la suma de
// las cantidades de sus movimientos supervivientes (invariante del ledger).
func TotalsConsistent(item *entity.Item, movements []*entity.ItemMovement) bool {
	var entries, exits int
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeEntry:
			entries += m.Quantity
		case entity.MovementTypeExit:
			exits += m.Quantity
		}
	}
	return item.EntryTotal == entries && item.ExitTotal == exits
}
