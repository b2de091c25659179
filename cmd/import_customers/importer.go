package main

import (
	"context"
	"errors"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// customerCreator alta de clientes (CustomerUseCase).
type customerCreator interface {
	Create(ctx context.Context, riderID string, in dto.CustomerRequest) (*dto.CustomerResponse, error)
}

// report resultado de la importación.
type report struct {
	Created    int
	Duplicates int
	Invalid    int
}

// errDryRun fuerza el rollback de la transacción en modo -dry-run.
var errDryRun = errors.New("dry-run: cambios descartados")

// importRows da de alta cada fila con las mismas reglas que POST /customer.
// Duplicados y filas inválidas se registran y se saltan; cualquier otro error corta.
func importRows(ctx context.Context, uc customerCreator, riderID string, rows []row, log *logger.Logger) (report, error) {
	var rep report
	for _, r := range rows {
		c, err := uc.Create(ctx, riderID, r.req)
		switch {
		case err == nil:
			rep.Created++
			log.Debug().Int("line", r.line).Str("customer_id", c.ID).Msg("cliente creado")
		case errors.Is(err, domain.ErrDuplicate):
			rep.Duplicates++
			log.Warn().Int("line", r.line).Str("name", r.req.Name).Msg("teléfono duplicado, se omite")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPhone):
			rep.Invalid++
			log.Warn().Int("line", r.line).Err(err).Msg("fila inválida, se omite")
		default:
			return rep, err
		}
	}
	return rep, nil
}
