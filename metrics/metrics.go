// Package metrics tracks run metadata and data-quality defect counts for a
// generation run and can persist them as a JSON summary.
package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// RunMetadata captures high-level context for a generation run.
type RunMetadata struct {
	Seed          int64         `json:"seed"`
	TotalRows     int64         `json:"total_rows"`
	BatchSize     int64         `json:"batch_size"`
	Batches       int           `json:"batches"`
	RowsWritten   int64         `json:"rows_written"`
	Columns       int           `json:"columns"`
	OutputPath    string        `json:"output_path"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Duration      time.Duration `json:"duration"`
	RowsPerSecond float64       `json:"rows_per_second"`
}

// Collector accumulates defect counts keyed by field and defect kind.
type Collector struct {
	mu     sync.Mutex
	counts map[string]map[string]int64
}

// NewCollector creates an empty defect collector.
func NewCollector() *Collector {
	return &Collector{counts: make(map[string]map[string]int64)}
}

// Observe records one fired defect. Shaped to satisfy corrupt.Observer.
func (c *Collector) Observe(field, kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byKind, ok := c.counts[field]
	if !ok {
		byKind = make(map[string]int64)
		c.counts[field] = byKind
	}
	byKind[kind]++
}

// Snapshot returns a copy of the accumulated counts.
func (c *Collector) Snapshot() map[string]map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]map[string]int64, len(c.counts))
	for field, byKind := range c.counts {
		inner := make(map[string]int64, len(byKind))
		for kind, n := range byKind {
			inner[kind] = n
		}
		out[field] = inner
	}
	return out
}

// Total returns the total number of defects observed.
func (c *Collector) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, byKind := range c.counts {
		for _, n := range byKind {
			total += n
		}
	}
	return total
}

// Summary is the serializable end-of-run report.
type Summary struct {
	Run     RunMetadata                 `json:"run"`
	Defects map[string]map[string]int64 `json:"defects"`
}

// WriteSummary persists the summary as indented JSON.
func WriteSummary(path string, s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
