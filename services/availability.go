package services

import "travel-backend/models"

// BatchSelection is the result of resolving a requested travel date against a
// package's availability list.
type BatchSelection struct {
	// Selected is the batch the draft should book against, nil when every
	// batch is sold out.
	Selected *models.AvailabilityBatch
	// Selectable are the batches with remaining capacity, in catalog order.
	// A date picker must only offer these.
	Selectable []models.AvailabilityBatch
	// Travelers is the traveler count after clamping to the selected batch's
	// remaining capacity (minimum 1). Equal to the input when no clamp applies.
	Travelers int
}

// SoldOut reports whether no batch has remaining capacity.
func (s BatchSelection) SoldOut() bool {
	return s.Selected == nil
}

// SelectBatch picks the active availability batch for a booking draft.
//
// Batches with no remaining capacity are filtered out first. If requestedDate
// matches a remaining batch it wins; otherwise the first remaining batch in
// list order is selected (list order is the implicit sort key, not calendar
// order). currentTravelers is clamped down to the selected batch's capacity,
// never below 1. Pure function, no side effects.
func SelectBatch(batches []models.AvailabilityBatch, requestedDate string, currentTravelers int) BatchSelection {
	selectable := make([]models.AvailabilityBatch, 0, len(batches))
	for _, b := range batches {
		if b.AvailableTickets() > 0 {
			selectable = append(selectable, b)
		}
	}

	sel := BatchSelection{Selectable: selectable, Travelers: currentTravelers}
	if len(selectable) == 0 {
		return sel
	}

	picked := selectable[0]
	if requestedDate != "" {
		for _, b := range selectable {
			if b.StartDate == requestedDate {
				picked = b
				break
			}
		}
	}
	sel.Selected = &picked

	if sel.Travelers < 1 {
		sel.Travelers = 1
	}
	if max := picked.AvailableTickets(); sel.Travelers > max {
		sel.Travelers = max
	}
	return sel
}
