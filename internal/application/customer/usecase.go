package customer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/pkg/geo"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// CustomerUseCase casos de uso del registro de clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	fallback geo.Point
	log      *logger.Logger
	now      func() time.Time
}

// NewCustomerUseCase construye el caso de uso. fallback son las coordenadas que se asignan
// cuando el cliente no trae lat/lng válidos.
func NewCustomerUseCase(repo repository.CustomerRepository, fallback geo.Point, log *logger.Logger) *CustomerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerUseCase{repo: repo, fallback: fallback, log: log.Component("customer"), now: time.Now}
}

// Create registra un cliente para el rider.
// ErrInvalidInput si falta nombre o dirección; ErrDuplicate si el teléfono ya existe.
func (uc *CustomerUseCase) Create(ctx context.Context, riderID string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	name, address, err := requiredFields(in)
	if err != nil {
		return nil, err
	}
	phone, err := parsePhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if err := uc.ensurePhoneFree(ctx, phone, ""); err != nil {
		return nil, err
	}
	pos := ResolveCoordinates(in.Lat, in.Lng, uc.fallback)
	now := uc.now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		RiderID:   riderID,
		Name:      name,
		Address:   address,
		Phone:     phone,
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Remarks:   strings.TrimSpace(in.Remarks),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("customer_id", c.ID).Str("rider_id", riderID).Msg("cliente registrado")
	return dto.NewCustomerResponse(c), nil
}

// List devuelve todos los clientes del sistema (no sólo los del rider).
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos de un cliente del rider. ErrCustomerNotFound si no es suyo o no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, riderID, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	name, address, err := requiredFields(in)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByIDAndRider(ctx, id, riderID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	phone, err := parsePhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if err := uc.ensurePhoneFree(ctx, phone, c.ID); err != nil {
		return nil, err
	}
	pos := ResolveCoordinates(in.Lat, in.Lng, uc.fallback)
	c.Name = name
	c.Address = address
	c.Phone = phone
	c.Lat, c.Lng = pos.Lat, pos.Lng
	c.Remarks = strings.TrimSpace(in.Remarks)
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(c), nil
}

// ensurePhoneFree ErrDuplicate si otro cliente ya usa el teléfono. El centinela nunca choca.
func (uc *CustomerUseCase) ensurePhoneFree(ctx context.Context, phone int64, selfID string) error {
	if phone == entity.NoPhone {
		return nil
	}
	existing, err := uc.repo.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

// ResolveCoordinates devuelve la posición del cliente, o el par por defecto completo
// si lat o lng faltan, no son numéricos, son cero o están fuera de rango.
func ResolveCoordinates(lat, lng dto.OptionalNumber, fallback geo.Point) geo.Point {
	la, okLat := lat.Float()
	ln, okLng := lng.Float()
	p := geo.Point{Lat: la, Lng: ln}
	if !okLat || !okLng || p.IsZero() || !p.Valid() {
		return fallback
	}
	return p
}

func requiredFields(in dto.CustomerRequest) (name, address string, err error) {
	name = strings.TrimSpace(in.Name)
	address = strings.TrimSpace(in.Address)
	if name == "" || address == "" {
		return "", "", domain.ErrInvalidInput
	}
	return name, address, nil
}

// parsePhone ausente → NoPhone; presente pero no entero → ErrInvalidPhone.
func parsePhone(n dto.OptionalNumber) (int64, error) {
	if !n.Present() {
		return entity.NoPhone, nil
	}
	p, ok := n.Int()
	if !ok || p < 0 {
		return 0, domain.ErrInvalidPhone
	}
	return p, nil
}
