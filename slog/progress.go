package slog

import (
	"log/slog"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/gonum"
	"github.com/fwojciec/docprep/pipeline"
)

// ProgressLogger returns a pipeline.ProgressFunc that logs each event.
// Failures are warnings; skipped files and per-file progress are info.
func ProgressLogger(logger *slog.Logger) pipeline.ProgressFunc {
	return func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressStarted:
			logger.Info("processing started", "files", e.Total)
		case pipeline.ProgressProcessed:
			logger.Info("processed", "file", e.File, "chunks", e.Chunks, "completed", e.Completed, "total", e.Total)
		case pipeline.ProgressSkipped:
			logger.Info("skipped", "file", e.File, "reason", e.Reason, "completed", e.Completed, "total", e.Total)
		case pipeline.ProgressFailed:
			logger.Warn("failed", "file", e.File, "err", e.Error, "completed", e.Completed, "total", e.Total)
		case pipeline.ProgressFinished:
			logger.Info("processing finished", "files", e.Total)
		}
	}
}

// CycleLogger returns a gonum.CycleFunc that warns about reference cycles.
func CycleLogger(logger *slog.Logger) gonum.CycleFunc {
	return func(category docprep.Category, docs []*docprep.ProcessedDocument) {
		files := make([]string, len(docs))
		for i, d := range docs {
			files[i] = d.RelPath
		}
		logger.Warn("reference cycle, keeping baseline order",
			"category", category,
			"files", files,
		)
	}
}
