package store

import "github.com/MKhiriev/qryptshare/internal/config"

type Storages struct {
	ExportFileStorage ExportFileStorage
}

func NewStorages(cfg config.Export) *Storages {
	return &Storages{
		ExportFileStorage: NewExportFileStorage(cfg.OutputDir),
	}
}
