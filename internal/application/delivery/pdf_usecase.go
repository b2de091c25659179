package delivery

import (
	"context"
	"fmt"

	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
)

// RemittancePDFUseCase genera la hoja de remesa del día en PDF.
type RemittancePDFUseCase struct {
	ledger    *DeliveryUseCase
	users     repository.UserRepository
	generator RemittancePDFGenerator
}

// NewRemittancePDFUseCase construye el caso de uso inyectando sus dependencias.
func NewRemittancePDFUseCase(ledger *DeliveryUseCase, users repository.UserRepository, generator RemittancePDFGenerator) *RemittancePDFUseCase {
	return &RemittancePDFUseCase{ledger: ledger, users: users, generator: generator}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *RemittancePDFUseCase) Download(ctx context.Context, riderID string) (pdfBytes []byte, filename string, err error) {
	user, err := uc.users.GetByID(ctx, riderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener rider: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}
	list, day, err := uc.ledger.Today(ctx, riderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: historial: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateRemittancePDF(ctx, RemittanceSlip{
		RiderName: user.Name,
		Day:       day,
		Summary:   delivery.Summarize(list),
		Records:   list,
	})
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("remittance-%s.pdf", day.Format("2006-01-02")), nil
}
