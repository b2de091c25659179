package delivery

import "github.com/jhoicas/rider-tracker/internal/domain/entity"

// PrioritizeAddress devuelve una copia con las entregas de la dirección elegida al frente.
// Partición estable: coincidencias primero, el resto en su orden original.
// Con address vacío devuelve la lista sin cambios.
func PrioritizeAddress(list []*entity.Delivery, address string) []*entity.Delivery {
	out := make([]*entity.Delivery, 0, len(list))
	if address == "" {
		return append(out, list...)
	}
	var rest []*entity.Delivery
	for _, d := range list {
		if d.Address() == address {
			out = append(out, d)
		} else {
			rest = append(rest, d)
		}
	}
	return append(out, rest...)
}

// DistinctAddresses direcciones distintas presentes en la lista, en orden de primera aparición.
func DistinctAddresses(list []*entity.Delivery) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, d := range list {
		a := d.Address()
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
