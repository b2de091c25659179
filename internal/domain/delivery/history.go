package delivery

import (
	"time"

	"github.com/jhoicas/rider-tracker/internal/domain/entity"
)

// HistoryView vistas del historial del día.
type HistoryView string

const (
	ViewAll      HistoryView = "all"
	ViewCash     HistoryView = "cash"
	ViewGCash    HistoryView = "gcash"
	ViewReturned HistoryView = "returned"
)

// ParseHistoryView interpreta el filtro recibido; cualquier valor desconocido es ViewAll.
func ParseHistoryView(s string) HistoryView {
	switch HistoryView(s) {
	case ViewCash, ViewGCash, ViewReturned:
		return HistoryView(s)
	}
	return ViewAll
}

// FilterHistory aplica la vista sobre el historial ya cargado. No modifica la entrada.
func FilterHistory(list []*entity.Delivery, view HistoryView) []*entity.Delivery {
	if view == ViewAll {
		return append([]*entity.Delivery(nil), list...)
	}
	out := make([]*entity.Delivery, 0, len(list))
	for _, d := range list {
		var keep bool
		switch view {
		case ViewCash:
			keep = d.PaymentMethodIs(entity.PaymentCash)
		case ViewGCash:
			keep = d.PaymentMethodIs(entity.PaymentGCash)
		case ViewReturned:
			keep = d.Status == entity.StatusReturned
		}
		if keep {
			out = append(out, d)
		}
	}
	return out
}

// DayWindow rango del día calendario de now en loc: 00:00:00.000 – 23:59:59.999.
func DayWindow(now time.Time, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.Local
	}
	n := now.In(loc)
	start = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	end = time.Date(n.Year(), n.Month(), n.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// InWindow indica si t cae dentro de [start, end] (ambos inclusive).
func InWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
