package domain

// UnitStatus represents the priming state of a module or bundle.
type UnitStatus string

const (
	// UnitPending indicates the unit is waiting to be primed.
	UnitPending UnitStatus = "Pending"
	// UnitRunning indicates the unit is being primed.
	UnitRunning UnitStatus = "Running"
	// UnitCompleted indicates every schema of the unit was visited.
	UnitCompleted UnitStatus = "Completed"
	// UnitFailed indicates priming the unit stopped with an error.
	UnitFailed UnitStatus = "Failed"
)

// PrimeUnit is a set of directories primed together, a project module or a
// target platform bundle.
type PrimeUnit struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Roots []string `json:"roots"`
}

// UnitReport summarises priming one unit.
type UnitReport struct {
	PrimeUnit

	Status UnitStatus `json:"status"`
	// Files is the number of schema files visited.
	Files int `json:"files"`
	// Invalid counts files that did not yield a definition.
	Invalid int `json:"invalid"`
	// Refs counts resolved element references, Unresolved the ones that were not found.
	Refs       int    `json:"refs"`
	Unresolved int    `json:"unresolved"`
	Error      string `json:"error,omitempty"`
}

// PrimeReport is the outcome of one priming run.
type PrimeReport struct {
	RunID string       `json:"runId"`
	Units []UnitReport `json:"units"`
}

// Failed returns the number of units that did not complete.
func (r PrimeReport) Failed() int {
	n := 0
	for _, u := range r.Units {
		if u.Status == UnitFailed {
			n++
		}
	}
	return n
}
