package pipeline

// State is a phase in a pipeline run. A run moves strictly forward:
//
//	idle -> loading -> generating -> draining -> done
//
// with any phase able to fall into failed, which is terminal. Draining is
// entered on both normal completion and cancellation so the output buffer is
// always flushed before the run ends.
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateGenerating State = "generating"
	StateDraining   State = "draining"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

func (s State) String() string { return string(s) }

// Terminal reports whether the run has ended.
func (s State) Terminal() bool { return s == StateDone || s == StateFailed }
