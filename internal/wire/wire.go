// Package wire provides dependency injection for the reorder tool.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/asreorder/internal/adapters/aspace"
	"github.com/example/asreorder/internal/adapters/excel"
	"github.com/example/asreorder/internal/adapters/sqlite"
	"github.com/example/asreorder/internal/app"
	"github.com/example/asreorder/internal/config"
	"github.com/example/asreorder/internal/db"
	"github.com/example/asreorder/internal/ports/primary"
)

var (
	client            *aspace.Client
	validationService primary.ValidationService
	reorderService    primary.ReorderService
	clientOnce        sync.Once

	historyService primary.HistoryService
	auditOnce      sync.Once
)

// IngestService returns a new IngestService backed by the xlsx reader.
func IngestService() primary.IngestService {
	return app.NewIngestService(excel.NewReader())
}

// Client returns the singleton ArchivesSpace client. The caller is
// responsible for authenticating it before issuing lookups or moves.
func Client() *aspace.Client {
	clientOnce.Do(initClientServices)
	return client
}

// ValidationService returns the singleton ValidationService instance.
func ValidationService() primary.ValidationService {
	clientOnce.Do(initClientServices)
	return validationService
}

// ReorderService returns the singleton ReorderService instance.
func ReorderService() primary.ReorderService {
	clientOnce.Do(initClientServices)
	return reorderService
}

// HistoryService returns the singleton HistoryService instance. It only
// needs the local audit database, not ArchivesSpace credentials.
func HistoryService() primary.HistoryService {
	auditOnce.Do(initAuditServices)
	return historyService
}

// initClientServices builds everything that talks to ArchivesSpace.
func initClientServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	client = aspace.New(cfg.BaseURL, cfg.Username, cfg.Password, cfg.RepositoryID)
	validationService = app.NewValidationService(client)
	reorderService = app.NewReorderService(client)
}

// initAuditServices builds the audit-store service.
func initAuditServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize audit database: %v", err)
	}
	historyService = app.NewHistoryService(sqlite.NewRunRepository(database))
}
