package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
)

type Service interface {
	Create(ctx context.Context, req CreateAlertRequest) (*AlertDTO, error)
	List(ctx context.Context) ([]AlertDTO, error)
}

type service struct {
	store repo.Store[models.SecurityAlert]
	now   func() time.Time
}

func NewService(store repo.Store[models.SecurityAlert], now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("security alert store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}, nil
}

func (s *service) Create(ctx context.Context, req CreateAlertRequest) (*AlertDTO, error) {
	alert := req.ToModel(s.now())
	id, err := s.store.Insert(ctx, alert)
	if err != nil {
		return nil, err
	}
	alert.ID = id

	dto := FromModel(&alert)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]AlertDTO, error) {
	stored, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AlertDTO, 0, len(stored))
	for i := range stored {
		out = append(out, FromModel(&stored[i]))
	}
	return out, nil
}
