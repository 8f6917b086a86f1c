package commands

import (
	"context"

	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/domain/usage"
	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// applyLedger posts the effect of an admitted request once, anchored on its first row.
func applyLedger(ctx context.Context, tx shared.Tx, anchor *reservation.Reservation, deviceIDs []uuid.UUID) error {
	p, err := usage.ForAdmission(anchor, deviceIDs)
	if err != nil {
		return err
	}
	if err := tx.Ledger().Post(ctx, p); err != nil {
		return storeErr(err)
	}
	return nil
}

// reverseLedger undoes what applyLedger posted for r, using only r's stored slot.
// Rejected reservations never posted anything and are skipped.
func reverseLedger(ctx context.Context, tx shared.Tx, r *reservation.Reservation) error {
	if !r.IsAdmitted() {
		return nil
	}
	p, err := usage.ForReversal(r)
	if err != nil {
		return err
	}
	if err := tx.Ledger().Post(ctx, p); err != nil {
		return storeErr(err)
	}
	return nil
}

func slotKeys(labID uuid.UUID, deviceIDs []uuid.UUID, slot reservation.TimeSlot) []shared.SlotKey {
	keys := make([]shared.SlotKey, 0, len(deviceIDs)+1)
	keys = append(keys, shared.LaboratorySlot(labID, slot.Date()))
	for _, id := range deviceIDs {
		keys = append(keys, shared.DeviceSlot(id, slot.Date()))
	}
	return shared.SortedKeys(keys)
}
