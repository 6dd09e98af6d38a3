package service

import (
	"context"
	"errors"

	"jokepatra/internal/repository"
)

var ErrSchemaIncomplete = errors.New("schema incomplete: run migrations/001_create_tables.sql")

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Tables   int    `json:"tables"`
}

type HealthService interface {
	Check(ctx context.Context) (*HealthStatus, error)
}

type healthService struct {
	tablesRepo repository.TablesRepository
}

func NewHealthService(tablesRepo repository.TablesRepository) HealthService {
	return &healthService{tablesRepo: tablesRepo}
}

// Check counts the application tables through the public handle, which both
// proves connectivity and catches a missing migration.
func (h *healthService) Check(ctx context.Context) (*HealthStatus, error) {
	count, err := h.tablesRepo.CountTablesDB(ctx)
	if err != nil {
		return &HealthStatus{Status: "degraded", Database: err.Error()}, err
	}

	if count < 2 {
		return &HealthStatus{Status: "degraded", Database: "schema incomplete", Tables: count}, ErrSchemaIncomplete
	}

	return &HealthStatus{Status: "ok", Database: "ok", Tables: count}, nil
}
