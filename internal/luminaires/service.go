package luminaires

import (
	"context"
	"fmt"
	"time"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
)

type Service interface {
	Create(ctx context.Context, req CreateLuminaireRequest) (*LuminaireDTO, error)
	List(ctx context.Context) ([]LuminaireDTO, error)
}

type service struct {
	store repo.Store[models.Luminaire]
	now   func() time.Time
}

func NewService(store repo.Store[models.Luminaire], now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("luminaire store is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}, nil
}

func (s *service) Create(ctx context.Context, req CreateLuminaireRequest) (*LuminaireDTO, error) {
	luminaire := req.ToModel(s.now())
	id, err := s.store.Insert(ctx, luminaire)
	if err != nil {
		return nil, err
	}
	luminaire.ID = id

	dto := FromModel(&luminaire)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]LuminaireDTO, error) {
	stored, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LuminaireDTO, 0, len(stored))
	for i := range stored {
		out = append(out, FromModel(&stored[i]))
	}
	return out, nil
}
