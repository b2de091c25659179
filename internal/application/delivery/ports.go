package delivery

import (
	"context"
	"time"

	"github.com/jhoicas/rider-tracker/internal/domain/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// RemittanceSlip datos de la hoja de remesa impresa.
type RemittanceSlip struct {
	RiderName string
	Day       time.Time
	Summary   delivery.Remittance
	Records   []*entity.Delivery // historial del día, más reciente primero
}

// RemittancePDFGenerator genera el PDF de la remesa (implementación en infrastructure/pdf).
type RemittancePDFGenerator interface {
	GenerateRemittancePDF(ctx context.Context, slip RemittanceSlip) ([]byte, error)
}
