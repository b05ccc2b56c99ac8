package model

// RunStatus represents the state of one incremental rendering run
type RunStatus string

const (
	// RunStatusIdle means the run was created but has not been scheduled
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means steps are being scheduled for the run
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means the cap was reached or the items were exhausted
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusSuperseded means a newer run replaced this one
	RunStatusSuperseded RunStatus = "Superseded"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while the run may still produce side effects
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusIdle || rs == RunStatusRunning
}

// IsFinished returns true if the run reached a terminal state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusSuperseded
}
