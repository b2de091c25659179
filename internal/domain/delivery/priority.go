// Package delivery contiene las reglas puras de ordenamiento, filtrado y agregación
// de entregas (servicios de dominio, sin I/O).
package delivery

import (
	"sort"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// AddressPriority tabla ordenada de direcciones conocidas; la posición es la prioridad.
type AddressPriority struct {
	rank map[string]int
}

// NewAddressPriority construye la tabla. Si una dirección se repite, cuenta la primera aparición.
func NewAddressPriority(addresses []string) *AddressPriority {
	rank := make(map[string]int, len(addresses))
	for i, a := range addresses {
		if _, dup := rank[a]; !dup {
			rank[a] = i
		}
	}
	return &AddressPriority{rank: rank}
}

// Rank devuelve la posición de la dirección en la tabla. ok=false si no está
// (equivale a prioridad infinita: va después de todas las conocidas).
// La comparación es exacta.
func (p *AddressPriority) Rank(address string) (rank int, ok bool) {
	rank, ok = p.rank[address]
	return rank, ok
}

// Less compara dos direcciones según la tabla.
func (p *AddressPriority) Less(a, b string) bool {
	ra, okA := p.Rank(a)
	rb, okB := p.Rank(b)
	switch {
	case okA && okB:
		return ra < rb
	case okA:
		return true
	default:
		return false
	}
}

// SortByPriority ordena in-place las entregas por la dirección del cliente.
// Estable: entre direcciones de igual prioridad (o sin prioridad) se mantiene el orden de entrada.
func (p *AddressPriority) SortByPriority(list []*entity.Delivery) {
	sort.SliceStable(list, func(i, j int) bool {
		return p.Less(list[i].Address(), list[j].Address())
	})
}
