package service

import (
	"github.com/MKhiriev/fintrace-client/internal/adapter"
	"github.com/MKhiriev/fintrace-client/internal/config"
	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/internal/store"
	"github.com/MKhiriev/fintrace-client/internal/workers"
)

// ClientServices groups the services the CLI works with.
type ClientServices struct {
	AnalysisService AnalysisService
}

// NewClientServices wires the services. storages may be nil when history is
// disabled.
func NewClientServices(analyzer adapter.AnalyzerAdapter, storages *store.Storages, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	var history store.HistoryRepository
	if storages != nil {
		history = storages.HistoryRepository
	}

	return &ClientServices{
		AnalysisService: NewAnalysisService(analyzer, history, workers.NewPool(workersCfg.Concurrency), logger),
	}
}
