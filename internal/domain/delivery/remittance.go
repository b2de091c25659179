package delivery

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// Bucket cantidad y suma de montos de un grupo de la remesa.
type Bucket struct {
	Count int
	Total decimal.Decimal
}

func (b *Bucket) add(amount decimal.Decimal) {
	b.Count++
	b.Total = b.Total.Add(amount)
}

// Remittance cuadre de fin de día del rider.
type Remittance struct {
	Cash           Bucket
	GCash          Bucket
	Returned       Bucket
	GrandTotal     decimal.Decimal
	TotalDelivered int // tamaño del historial recibido
}

// Summarize agrega el historial del día. Cada entrega cae como máximo en un grupo:
//   - returned: status returned (sin importar el método de pago)
//   - cash / gcash: status delivered con ese método
//
// Cualquier otra combinación queda fuera de los tres grupos.
func Summarize(list []*entity.Delivery) Remittance {
	r := Remittance{
		Cash:     Bucket{Total: decimal.Zero},
		GCash:    Bucket{Total: decimal.Zero},
		Returned: Bucket{Total: decimal.Zero},
	}
	for _, d := range list {
		switch {
		case d.Status == entity.StatusReturned:
			r.Returned.add(d.Amount)
		case d.Status == entity.StatusDelivered && d.PaymentMethodIs(entity.PaymentCash):
			r.Cash.add(d.Amount)
		case d.Status == entity.StatusDelivered && d.PaymentMethodIs(entity.PaymentGCash):
			r.GCash.add(d.Amount)
		}
	}
	r.GrandTotal = r.Cash.Total.Add(r.GCash.Total).Add(r.Returned.Total)
	r.TotalDelivered = len(list)
	return r
}

// Progress avance de la jornada (barra de progreso del dashboard).
type Progress struct {
	Total      int
	Completed  int
	Percentage int
}

// ComputeProgress completed = entregas cerradas hoy; total = activas + cerradas.
func ComputeProgress(active, completed int) Progress {
	total := active + completed
	p := Progress{Total: total, Completed: completed}
	if total > 0 {
		p.Percentage = int(decimal.NewFromInt(int64(completed * 100)).
			Div(decimal.NewFromInt(int64(total))).Round(0).IntPart())
	}
	return p
}
