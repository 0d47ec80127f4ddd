package main

import (
	"github.com/smartcitysecure/smartcity-api/internal/repo"
	"github.com/smartcitysecure/smartcity-api/internal/users"
	"github.com/smartcitysecure/smartcity-api/pkg/db"
	"github.com/smartcitysecure/smartcity-api/pkg/db/models"
	"github.com/smartcitysecure/smartcity-api/pkg/metrics"
)

type stores struct {
	users      repo.Store[models.User]
	sensors    repo.Store[models.Sensor]
	luminaires repo.Store[models.Luminaire]
	energy     repo.Store[models.EnergyRecord]
	alerts     repo.Store[models.SecurityAlert]
	postes     repo.Store[models.Poste]
}

// newStores binds one accessor per collection. A nil client selects the
// in-memory driver.
func newStores(client *db.Client, m *metrics.StoreMetrics) stores {
	return stores{
		users:      newStore[models.User](client, m, models.CollectionUsers, users.EmailField),
		sensors:    newStore[models.Sensor](client, m, models.CollectionSensors),
		luminaires: newStore[models.Luminaire](client, m, models.CollectionLuminaires),
		energy:     newStore[models.EnergyRecord](client, m, models.CollectionEnergyRecords),
		alerts:     newStore[models.SecurityAlert](client, m, models.CollectionSecurityAlerts),
		postes:     newStore[models.Poste](client, m, models.CollectionPostes),
	}
}

func newStore[T any](client *db.Client, m *metrics.StoreMetrics, name string, unique ...string) repo.Store[T] {
	if client == nil {
		return repo.NewMemoryCollection[T](name, unique...)
	}
	return repo.NewCollection[T](client.Collection(name), client.OperationTimeout(), m)
}
