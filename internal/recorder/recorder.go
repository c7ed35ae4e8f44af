// Package recorder persists scan history for later analysis. The serving
// path never depends on it: recording failures are logged and dropped.
package recorder

import "TadawulScout/internal/model"

// Recorder persists completed scans.
type Recorder interface {
	RecordScan(result *model.ScanResult) error
	Close() error
}
