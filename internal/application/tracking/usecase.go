package tracking

import (
	"context"
	"time"

	"github.com/jhoicas/rider-tracker/internal/application/dto"
	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/pkg/geo"
)

// MapDefaults coordenadas fijas del mapa.
type MapDefaults struct {
	Center   geo.Point // centro cuando no hay rider ni entregas
	Fallback geo.Point // coordenadas por defecto de clientes sin pin
}

// TrackingUseCase mapa del rider, posición en vivo y simulación.
type TrackingUseCase struct {
	deliveries ActiveDeliveries
	store      repository.LocationStore
	sim        *Simulator
	defaults   MapDefaults
	now        func() time.Time
}

// NewTrackingUseCase construye el caso de uso.
func NewTrackingUseCase(deliveries ActiveDeliveries, store repository.LocationStore, sim *Simulator, defaults MapDefaults) *TrackingUseCase {
	return &TrackingUseCase{deliveries: deliveries, store: store, sim: sim, defaults: defaults, now: time.Now}
}

// MapView arma los datos del mapa: marcador del rider, un marcador por entrega activa con
// coordenadas, la polilínea rider → entregas (en el orden del listado) y el centro.
func (uc *TrackingUseCase) MapView(ctx context.Context, riderID string) (*dto.MapResponse, error) {
	loc, err := uc.store.Get(ctx, riderID)
	if err != nil {
		return nil, err
	}
	list, err := uc.deliveries.Active(ctx, riderID)
	if err != nil {
		return nil, err
	}
	targets, points := pinned(list)

	out := &dto.MapResponse{
		Markers:    make([]dto.DeliveryMarker, 0, len(targets)),
		Route:      make([]geo.Point, 0, len(points)+1),
		Simulating: uc.sim != nil && uc.sim.Running(riderID),
	}
	if loc != nil && !loc.Position.IsZero() {
		out.Rider = toLocationResponse(loc)
		out.Route = append(out.Route, loc.Position)
	}
	for i, d := range targets {
		out.Markers = append(out.Markers, dto.DeliveryMarker{
			DeliveryID:   d.ID,
			CustomerName: d.Customer.Name,
			Address:      d.Customer.Address,
			Position:     points[i],
			HasPin:       points[i] != uc.defaults.Fallback,
			Amount:       d.Amount.String(),
		})
	}
	out.Route = append(out.Route, points...)

	switch {
	case out.Rider != nil:
		out.Center = loc.Position
		if i := geo.Nearest(loc.Position, points); i >= 0 {
			out.NearestDeliveryID = targets[i].ID
		}
	case len(points) > 0:
		out.Center = points[0]
	default:
		out.Center = uc.defaults.Center
	}
	return out, nil
}

// SaveLocation guarda la posición enviada por el dispositivo.
func (uc *TrackingUseCase) SaveLocation(ctx context.Context, riderID string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	p := geo.Point{Lat: in.Lat, Lng: in.Lng}
	if !p.Valid() || p.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	loc := repository.RiderLocation{RiderID: riderID, Position: p, UpdatedAt: uc.now()}
	if list, err := uc.deliveries.Active(ctx, riderID); err == nil {
		targets, points := pinned(list)
		if i := geo.Nearest(p, points); i >= 0 {
			loc.NearestDeliveryID = targets[i].ID
		}
	}
	if err := uc.store.Save(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(&loc), nil
}

// GetLocation última posición conocida. ErrLocationUnknown si no hay.
func (uc *TrackingUseCase) GetLocation(ctx context.Context, riderID string) (*dto.LocationResponse, error) {
	loc, err := uc.store.Get(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocationUnknown
	}
	return toLocationResponse(loc), nil
}

// StartSimulation inicia (o reinicia) el rider simulado.
func (uc *TrackingUseCase) StartSimulation(ctx context.Context, riderID string) (*dto.SimulationResponse, error) {
	if err := uc.sim.Start(ctx, riderID); err != nil {
		return nil, err
	}
	return &dto.SimulationResponse{Running: true, Message: "Simulation started"}, nil
}

// StopSimulation detiene el rider simulado.
func (uc *TrackingUseCase) StopSimulation(_ context.Context, riderID string) *dto.SimulationResponse {
	if !uc.sim.Stop(riderID) {
		return &dto.SimulationResponse{Running: false, Message: "Simulation was not running"}
	}
	return &dto.SimulationResponse{Running: false, Message: "Simulation stopped"}
}

func toLocationResponse(loc *repository.RiderLocation) *dto.LocationResponse {
	return &dto.LocationResponse{
		RiderID:           loc.RiderID,
		Lat:               loc.Position.Lat,
		Lng:               loc.Position.Lng,
		NearestDeliveryID: loc.NearestDeliveryID,
		Simulated:         loc.Simulated,
		UpdatedAt:         loc.UpdatedAt,
	}
}
