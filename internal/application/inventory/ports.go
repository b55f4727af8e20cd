package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Gmao-api/internal/domain/entity"
	"github.com/jhoicas/Gmao-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: el ajuste
// de acumulados, la fila de movimiento y el snapshot de precio se confirman o
// revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.ItemMovementRepository,
		priceRepo repository.ItemPriceRepository,
	) error) error
}

// StockAlert es la intención de notificación que el ledger emite cuando el
// stock de un item cae a o por debajo de un umbral configurado.
type StockAlert struct {
	Severity     string    `json:"severity"` // warning, critical
	SiteID       string    `json:"site_id"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	CurrentStock int       `json:"current_stock"`
	Threshold    int       `json:"threshold"`
	Recipients   []string  `json:"recipients"` // UserIDs
	QueuedAt     time.Time `json:"queued_at"`
}

// NotificationDispatcher encola alertas de stock para entrega asíncrona.
// Fire-and-forget desde el ledger: entrega al menos una vez, sin ack ni retry
// orquestado aquí. Un fallo de encolado nunca afecta al movimiento ya
// confirmado.
type NotificationDispatcher interface {
	Enqueue(ctx context.Context, alert StockAlert) error
}

// KardexPDFGenerator genera el PDF del kardex (historial de movimientos con
// saldo acumulado) de un item.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, item *entity.Item, rows []KardexRow) ([]byte, error)
}

// KardexRow es una fila del kardex: el movimiento y el saldo tras aplicarlo.
type KardexRow struct {
	Movement *entity.ItemMovement
	Balance  int
}
