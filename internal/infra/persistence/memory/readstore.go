package memory

import (
	"context"
	"sort"
	"time"

	"lab-reservation/internal/domain/lab"
	"lab-reservation/internal/domain/reservation"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.ReservationReadStore = (*Store)(nil)
	_ queries.UsageReadStore       = (*Store)(nil)
)

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var out *queries.ReservationView
	err := s.view(func(st *state) error {
		r, ok := st.reservations[id]
		if !ok {
			return infra.NotFound("reservation")
		}
		v, err := reservationView(st, r)
		out = v
		return err
	})
	return out, err
}

// FindByLaboratoryAndDate lists every row for the day, rejected ones included, ordered by start time.
func (s *Store) FindByLaboratoryAndDate(_ context.Context, labID uuid.UUID, date time.Time) ([]*queries.ReservationView, error) {
	day := reservation.FormatDate(date)
	var out []*queries.ReservationView
	err := s.view(func(st *state) error {
		for _, r := range st.reservations {
			if r.LabID != labID || r.Date != day {
				continue
			}
			v, err := reservationView(st, r)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) LaboratoryUsage(_ context.Context, labID uuid.UUID) (*queries.LaboratoryUsageView, error) {
	var out *queries.LaboratoryUsageView
	err := s.view(func(st *state) error {
		l, ok := st.laboratories[labID]
		if !ok {
			return infra.NotFound("laboratory")
		}
		out = &queries.LaboratoryUsageView{
			ID:             l.ID,
			Name:           l.Name,
			Category:       l.Category,
			Status:         l.Status,
			UsageHours:     lab.MinutesToHours(l.UsageMinutes),
			OperatingHours: lab.MinutesToHours(l.OperatingMinutes),
		}
		return nil
	})
	return out, err
}

func (s *Store) DeviceUsage(_ context.Context, deviceID uuid.UUID) (*queries.DeviceUsageView, error) {
	var out *queries.DeviceUsageView
	err := s.view(func(st *state) error {
		d, ok := st.devices[deviceID]
		if !ok {
			return infra.NotFound("device")
		}
		out = &queries.DeviceUsageView{
			ID:           d.ID,
			Name:         d.Name,
			Category:     d.Category,
			Status:       d.Status,
			CurrentHours: lab.MinutesToHours(d.CurrentMinutes),
			TotalHours:   lab.MinutesToHours(d.TotalMinutes),
		}
		return nil
	})
	return out, err
}

func reservationView(st *state, r ReservationRecord) (*queries.ReservationView, error) {
	slot, err := recordSlot(r)
	if err != nil {
		return nil, err
	}
	u := st.users[r.UserID]
	return &queries.ReservationView{
		ID:             r.ID,
		UserID:         r.UserID,
		UserName:       u.Name,
		UserRole:       u.Role,
		LabID:          r.LabID,
		LabName:        st.laboratories[r.LabID].Name,
		ExperimentID:   r.ExperimentID,
		ExperimentName: st.experiments[r.ExperimentID].Name,
		DeviceID:       r.DeviceID,
		DeviceName:     st.devices[r.DeviceID].Name,
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Hours:          slot.Hours(),
		Purpose:        r.Purpose,
		Status:         r.Status,
		Admitted:       r.Status == reservation.StatusAdmitted.String(),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}
