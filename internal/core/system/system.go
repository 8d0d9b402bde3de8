package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain queued interaction requests
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: entity simulation (doors)
	PhasePostUpdate              // 3: match progression
	PhaseOutput                  // 4: sounds + snapshots out
)

// System is the interface every per-tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
