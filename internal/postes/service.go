package postes

import (
	"context"
	"fmt"

	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
)

// Service creates and lists streetlight pole records.
type Service interface {
	Create(ctx context.Context, req CreatePosteRequest) (*PosteDTO, error)
	List(ctx context.Context) ([]PosteDTO, error)
}

type service struct {
	store repo.Store[models.Poste]
}

func NewService(store repo.Store[models.Poste]) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("poste store is required")
	}
	return &service{store: store}, nil
}

func (s *service) Create(ctx context.Context, req CreatePosteRequest) (*PosteDTO, error) {
	poste := req.ToModel()
	id, err := s.store.Insert(ctx, poste)
	if err != nil {
		return nil, err
	}
	poste.ID = id

	dto := FromModel(&poste)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]PosteDTO, error) {
	stored, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PosteDTO, 0, len(stored))
	for i := range stored {
		out = append(out, FromModel(&stored[i]))
	}
	return out, nil
}
