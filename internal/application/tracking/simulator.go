package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
	"github.com/jhoicas/rider-tracker/pkg/geo"
	"github.com/jhoicas/rider-tracker/pkg/logger"
)

// SimulatorConfig parámetros del rider simulado.
type SimulatorConfig struct {
	Step     float64       // grados por tick
	Interval time.Duration // periodo del tick
	Start    geo.Point     // posición inicial si el rider no tiene una guardada
}

type run struct {
	id     uint64
	cancel context.CancelFunc
}

// Simulator mueve riders simulados hacia su entrega activa más cercana.
// Una goroutine por rider; no hay condición de llegada, corre hasta Stop o StopAll.
type Simulator struct {
	deliveries ActiveDeliveries
	store      repository.LocationStore
	cfg        SimulatorConfig
	log        *logger.Logger
	now        func() time.Time

	base   context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	runs   map[string]run
	seq    uint64
	wg     sync.WaitGroup
}

// NewSimulator construye el simulador. Las goroutines cuelgan de un contexto propio,
// no del de la request que las inicia.
func NewSimulator(deliveries ActiveDeliveries, store repository.LocationStore, cfg SimulatorConfig, log *logger.Logger) *Simulator {
	if log == nil {
		log = logger.Nop()
	}
	base, cancel := context.WithCancel(context.Background())
	return &Simulator{
		deliveries: deliveries,
		store:      store,
		cfg:        cfg,
		log:        log.Component("simulator"),
		now:        time.Now,
		base:       base,
		cancel:     cancel,
		runs:       make(map[string]run),
	}
}

// Start inicia (o reinicia) la simulación del rider.
func (s *Simulator) Start(ctx context.Context, riderID string) error {
	pos := s.cfg.Start
	loc, err := s.store.Get(ctx, riderID)
	if err != nil {
		return err
	}
	if loc != nil && !loc.Position.IsZero() {
		pos = loc.Position
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.base.Err() != nil {
		return context.Canceled
	}
	if prev, ok := s.runs[riderID]; ok {
		prev.cancel()
	}
	s.seq++
	runCtx, cancel := context.WithCancel(s.base)
	r := run{id: s.seq, cancel: cancel}
	s.runs[riderID] = r

	s.wg.Add(1)
	go s.loop(runCtx, riderID, r.id, pos)
	s.log.Info().Str("rider_id", riderID).Float64("lat", pos.Lat).Float64("lng", pos.Lng).Msg("simulación iniciada")
	return nil
}

// Stop detiene la simulación del rider. Devuelve false si no había una en curso.
func (s *Simulator) Stop(riderID string) bool {
	s.mu.Lock()
	r, ok := s.runs[riderID]
	if ok {
		delete(s.runs, riderID)
	}
	s.mu.Unlock()
	if ok {
		r.cancel()
		s.log.Info().Str("rider_id", riderID).Msg("simulación detenida")
	}
	return ok
}

// Running indica si el rider tiene una simulación en curso.
func (s *Simulator) Running(riderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.runs[riderID]
	return ok
}

// StopAll cancela todas las simulaciones y espera a que terminen (shutdown).
func (s *Simulator) StopAll(ctx context.Context) error {
	s.mu.Lock()
	s.cancel()
	s.runs = make(map[string]run)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulator) loop(ctx context.Context, riderID string, id uint64, pos geo.Point) {
	defer s.wg.Done()
	defer s.forget(riderID, id)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next, err := s.Tick(ctx, riderID, pos)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warn().Err(err).Str("rider_id", riderID).Msg("tick de simulación falló")
				continue
			}
			pos = next
		}
	}
}

// forget borra la entrada sólo si sigue siendo la de esta goroutine (un reinicio la reemplaza).
func (s *Simulator) forget(riderID string, id uint64) {
	s.mu.Lock()
	if r, ok := s.runs[riderID]; ok && r.id == id {
		delete(s.runs, riderID)
	}
	s.mu.Unlock()
}

// Tick un paso de la simulación: busca la entrega activa más cercana, avanza un paso
// hacia ella y guarda la nueva posición. Sin entregas con coordenadas, el rider no se mueve.
func (s *Simulator) Tick(ctx context.Context, riderID string, pos geo.Point) (geo.Point, error) {
	list, err := s.deliveries.Active(ctx, riderID)
	if err != nil {
		return pos, err
	}
	targets, points := pinned(list)

	loc := repository.RiderLocation{RiderID: riderID, Position: pos, Simulated: true, UpdatedAt: s.now()}
	if i := geo.Nearest(pos, points); i >= 0 {
		loc.Position = geo.StepToward(pos, points[i], s.cfg.Step)
		loc.NearestDeliveryID = targets[i].ID
	}
	if err := s.store.Save(ctx, loc); err != nil {
		return pos, err
	}
	return loc.Position, nil
}

// pinned entregas con coordenadas (no cero) y sus puntos, en el mismo orden.
func pinned(list []*entity.Delivery) ([]*entity.Delivery, []geo.Point) {
	targets := make([]*entity.Delivery, 0, len(list))
	points := make([]geo.Point, 0, len(list))
	for _, d := range list {
		if d.Customer == nil {
			continue
		}
		p := geo.Point{Lat: d.Customer.Lat, Lng: d.Customer.Lng}
		if p.IsZero() {
			continue
		}
		targets = append(targets, d)
		points = append(points, p)
	}
	return targets, points
}
