package delivery

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/delivery"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// Config reglas configurables del ledger.
type Config struct {
	AddressPriority []string
	Location        *time.Location // corte del historial diario; nil = time.Local
}

// DeliveryUseCase casos de uso del ledger de entregas.
type DeliveryUseCase struct {
	deliveries repository.DeliveryRepository
	customers  repository.CustomerRepository
	priority   *delivery.AddressPriority
	loc        *time.Location
	log        *logger.Logger
	now        func() time.Time
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	deliveries repository.DeliveryRepository,
	customers repository.CustomerRepository,
	cfg Config,
	log *logger.Logger,
) *DeliveryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &DeliveryUseCase{
		deliveries: deliveries,
		customers:  customers,
		priority:   delivery.NewAddressPriority(cfg.AddressPriority),
		loc:        loc,
		log:        log.Component("delivery"),
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DeliveryUseCase) WithClock(now func() time.Time) *DeliveryUseCase {
	uc.now = now
	return uc
}

// Location zona horaria usada para el día del historial.
func (uc *DeliveryUseCase) Location() *time.Location { return uc.loc }

// Create registra una entrega en camino para un cliente existente.
// El monto ausente vale 0; una entrega sin monto nace pagada (entity.PaidOnCreate).
func (uc *DeliveryUseCase) Create(ctx context.Context, riderID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return nil, domain.ErrMissingCustomerID
	}
	amount := decimal.Zero
	if in.Amount != nil {
		amount = in.Amount.Round(2)
	}
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	now := uc.now()
	d := &entity.Delivery{
		ID:         uuid.New().String(),
		CustomerID: c.ID,
		RiderID:    riderID,
		Amount:     amount,
		IsPaid:     entity.PaidOnCreate(amount),
		Status:     entity.StatusOutForDelivery,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.deliveries.Create(ctx, d); err != nil {
		return nil, err
	}
	d.Customer = c
	uc.log.Debug().Str("delivery_id", d.ID).Str("customer_id", c.ID).Str("amount", amount.String()).Msg("entrega creada")
	return dto.NewDeliveryResponse(d), nil
}

// Active entregas en camino del rider, ordenadas por la tabla de prioridad de direcciones.
func (uc *DeliveryUseCase) Active(ctx context.Context, riderID string) ([]*entity.Delivery, error) {
	list, err := uc.deliveries.ListByRiderAndStatus(ctx, riderID, entity.StatusOutForDelivery)
	if err != nil {
		return nil, err
	}
	uc.priority.SortByPriority(list)
	return list, nil
}

// ListActive listado activo; si address no está vacío, esa dirección sube al principio.
func (uc *DeliveryUseCase) ListActive(ctx context.Context, riderID, address string) ([]*dto.DeliveryResponse, error) {
	list, err := uc.Active(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if address = strings.TrimSpace(address); address != "" {
		list = delivery.PrioritizeAddress(list, address)
	}
	return dto.NewDeliveryList(list), nil
}

// Addresses direcciones distintas del listado activo, en el orden en que aparecen.
func (uc *DeliveryUseCase) Addresses(ctx context.Context, riderID string) ([]string, error) {
	list, err := uc.Active(ctx, riderID)
	if err != nil {
		return nil, err
	}
	return delivery.DistinctAddresses(list), nil
}

// Today entregas cerradas hoy (zona configurada), más reciente primero.
func (uc *DeliveryUseCase) Today(ctx context.Context, riderID string) ([]*entity.Delivery, time.Time, error) {
	start, end := delivery.DayWindow(uc.now(), uc.loc)
	list, err := uc.deliveries.ListClosedBetween(ctx, riderID, start, end)
	if err != nil {
		return nil, start, err
	}
	return list, start, nil
}

// History historial del día con la vista indicada (all, cash, gcash, returned).
func (uc *DeliveryUseCase) History(ctx context.Context, riderID, filter string) ([]*dto.DeliveryResponse, error) {
	list, _, err := uc.Today(ctx, riderID)
	if err != nil {
		return nil, err
	}
	return dto.NewDeliveryList(delivery.FilterHistory(list, delivery.ParseHistoryView(filter))), nil
}

// Summary remesa del día.
func (uc *DeliveryUseCase) Summary(ctx context.Context, riderID string) (*dto.RemittanceResponse, error) {
	list, day, err := uc.Today(ctx, riderID)
	if err != nil {
		return nil, err
	}
	return NewRemittanceResponse(delivery.Summarize(list), day), nil
}

// Progress avance de la jornada: cerradas hoy sobre activas + cerradas hoy.
func (uc *DeliveryUseCase) Progress(ctx context.Context, riderID string) (*dto.ProgressResponse, error) {
	active, err := uc.deliveries.ListByRiderAndStatus(ctx, riderID, entity.StatusOutForDelivery)
	if err != nil {
		return nil, err
	}
	closed, _, err := uc.Today(ctx, riderID)
	if err != nil {
		return nil, err
	}
	p := delivery.ComputeProgress(len(active), len(closed))
	return &dto.ProgressResponse{Total: p.Total, Completed: p.Completed, Percentage: p.Percentage}, nil
}

// MarkDelivered cierra la entrega como entregada. El método de pago se valida antes de buscarla.
func (uc *DeliveryUseCase) MarkDelivered(ctx context.Context, in dto.MarkDeliveredRequest) (*dto.DeliveryResponse, error) {
	method, ok := entity.ParsePaymentMethod(strings.TrimSpace(in.PaymentMethod))
	if !ok {
		return nil, domain.ErrInvalidPaymentMethod
	}
	d, err := uc.find(ctx, in.DeliveryID)
	if err != nil {
		return nil, err
	}
	d.MarkDelivered(method, uc.now())
	if err := uc.deliveries.UpdateStatus(ctx, d); err != nil {
		return nil, err
	}
	uc.log.Info().Str("delivery_id", d.ID).Str("payment_method", string(method)).Msg("entrega marcada como entregada")
	return dto.NewDeliveryResponse(d), nil
}

// MarkReturned cierra la entrega como devuelta. Repetirlo deja el mismo estado.
func (uc *DeliveryUseCase) MarkReturned(ctx context.Context, in dto.MarkReturnedRequest) (*dto.DeliveryResponse, error) {
	d, err := uc.find(ctx, in.DeliveryID)
	if err != nil {
		return nil, err
	}
	d.MarkReturned(uc.now())
	if err := uc.deliveries.UpdateStatus(ctx, d); err != nil {
		return nil, err
	}
	uc.log.Info().Str("delivery_id", d.ID).Msg("entrega devuelta")
	return dto.NewDeliveryResponse(d), nil
}

// Delete elimina una entrega por ID.
func (uc *DeliveryUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrDeliveryNotFound
	}
	if err := uc.deliveries.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("delivery_id", id).Msg("entrega eliminada")
	return nil
}

func (uc *DeliveryUseCase) find(ctx context.Context, id string) (*entity.Delivery, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrDeliveryNotFound
	}
	d, err := uc.deliveries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDeliveryNotFound
	}
	return d, nil
}

// NewRemittanceResponse mapea la remesa a la salida HTTP.
func NewRemittanceResponse(r delivery.Remittance, day time.Time) *dto.RemittanceResponse {
	bucket := func(b delivery.Bucket) dto.BucketResponse {
		return dto.BucketResponse{Count: b.Count, Total: b.Total}
	}
	return &dto.RemittanceResponse{
		Date:           day.Format("2006-01-02"),
		Cash:           bucket(r.Cash),
		GCash:          bucket(r.GCash),
		Returned:       bucket(r.Returned),
		GrandTotal:     r.GrandTotal,
		TotalDelivered: r.TotalDelivered,
	}
}
