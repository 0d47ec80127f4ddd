package energy

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
)

// Service records and lists energy-consumption readings.
type Service interface {
	Create(ctx context.Context, req CreateRecordRequest) (*RecordDTO, error)
	List(ctx context.Context) ([]RecordDTO, error)
}

type service struct {
	store repo.Store[models.EnergyRecord]
	now   func() time.Time
}

func NewService(store repo.Store[models.EnergyRecord], now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("energy record store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}, nil
}

func (s *service) Create(ctx context.Context, req CreateRecordRequest) (*RecordDTO, error) {
	record := req.ToModel(s.now())
	id, err := s.store.Insert(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = id

	dto := FromModel(&record)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]RecordDTO, error) {
	stored, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RecordDTO, 0, len(stored))
	for i := range stored {
		out = append(out, FromModel(&stored[i]))
	}
	return out, nil
}
