package sensors

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
)

type Service interface {
	Create(ctx context.Context, req CreateSensorRequest) (*SensorDTO, error)
	List(ctx context.Context) ([]SensorDTO, error)
}

type service struct {
	store repo.Store[models.Sensor]
	now   func() time.Time
}

// NewService builds the sensors service. now defaults to time.Now.
func NewService(store repo.Store[models.Sensor], now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("sensor store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}, nil
}

func (s *service) Create(ctx context.Context, req CreateSensorRequest) (*SensorDTO, error) {
	sensor := req.ToModel(s.now())
	id, err := s.store.Insert(ctx, sensor)
	if err != nil {
		return nil, err
	}
	sensor.ID = id

	dto := FromModel(&sensor)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]SensorDTO, error) {
	stored, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SensorDTO, 0, len(stored))
	for i := range stored {
		out = append(out, FromModel(&stored[i]))
	}
	return out, nil
}
