package gtfsmerge

import (
	"sync"

	"github.com/agentstation/gtfsmerge/pkg/merge"
)

// Hook function types for merge events
type (
	// TableMergedHook is called for each table file written
	TableMergedHook func(table merge.TableResult)

	// TableSkippedHook is called for each table skipped for lack of a header
	TableSkippedHook func(table merge.SkippedTable)
)

// hooks manages event callbacks for merge results
type hooks struct {
	mu             sync.RWMutex
	onTableMerged  []TableMergedHook
	onTableSkipped []TableSkippedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnTableMerged registers a callback for each table written
func (h *hooks) OnTableMerged(fn TableMergedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTableMerged = append(h.onTableMerged, fn)
}

// OnTableSkipped registers a callback for each table skipped
func (h *hooks) OnTableSkipped(fn TableSkippedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTableSkipped = append(h.onTableSkipped, fn)
}

// trigger fires the callbacks for every table in result, in catalog order.
// Tables written before a failure are reported too.
func (h *hooks) trigger(result *merge.Result) {
	if result == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, t := range result.Tables {
		for _, hook := range h.onTableMerged {
			hook(t)
		}
	}
	for _, s := range result.Skipped {
		for _, hook := range h.onTableSkipped {
			hook(s)
		}
	}
}
