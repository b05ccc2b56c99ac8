package model

import (
	"time"

	"github.com/google/uuid"
)

// Display policy for one run.
const (
	DisplayCap  = 9
	GridColumns = 3
)

// RunIDPrefix prefixes every generated run ID.
const RunIDPrefix = "run-"

// RunState is the mutable state of one pipeline run.
// Items is never modified after construction; Cursor and Shown only grow.
type RunState struct {
	ID         string
	Generation uint64
	Items      []ResultItem
	Cursor     int
	Shown      int
	Cap        int
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRunState creates an idle run over items for the given generation
func NewRunState(generation uint64, items []ResultItem) *RunState {
	return &RunState{
		ID:         generateRunID(),
		Generation: generation,
		Items:      items,
		Cap:        DisplayCap,
		Status:     RunStatusIdle,
		StartedAt:  time.Now(),
	}
}

// Done reports whether the run has nothing left to do.
func (rs *RunState) Done() bool {
	return rs.Cursor >= len(rs.Items) || rs.Shown >= rs.Cap
}

// Next returns the item under the cursor and advances the cursor.
// Callers must check Done first.
func (rs *RunState) Next() ResultItem {
	item := rs.Items[rs.Cursor]
	rs.Cursor++
	return item
}

// Finish moves the run into a terminal status
func (rs *RunState) Finish(status RunStatus) {
	rs.Status = status
	rs.FinishedAt = time.Now()
}

// GridPosition maps the index of a successful render to its row-major cell.
func GridPosition(shown int) (row, col int) {
	return shown / GridColumns, shown % GridColumns
}

// generateRunID generates a unique run ID
func generateRunID() string {
	return RunIDPrefix + uuid.NewString()
}
