package recorder

import "TadawulScout/internal/model"

// NoopRecorder discards everything. Used when no database is configured
// or opening it failed.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ *model.ScanResult) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
