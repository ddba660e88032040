// Package graphcycle provides generic cycle detection over directed edges
// described by a successor function. Nodes are identified by any comparable
// key, so callers can walk name-keyed reference graphs without materializing
// an adjacency structure.
package graphcycle

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// CycleError reports the first key at which a cycle was observed.
type CycleError[K comparable] struct {
	Key K
}

func (e CycleError[K]) Error() string {
	return "cycle detected"
}

// Config configures a traversal. Next returns the successors of a key.
// Exists, when set, filters keys before they are expanded; keys that do not
// exist are skipped (dangling references are not an error here).
type Config[K comparable] struct {
	Exists func(K) bool
	Next   func(K) []K
	Starts []K
}

// Detect walks directed edges from each start key and returns the first
// CycleError encountered, or nil if every path terminates.
func Detect[K comparable](cfg Config[K]) error {
	states := make(map[K]visitState, len(cfg.Starts))

	var visit func(key K) error
	visit = func(key K) error {
		switch states[key] {
		case stateVisiting:
			return CycleError[K]{Key: key}
		case stateDone:
			return nil
		}
		if cfg.Exists != nil && !cfg.Exists(key) {
			return nil
		}
		states[key] = stateVisiting
		for _, next := range cfg.Next(key) {
			if err := visit(next); err != nil {
				return err
			}
		}
		states[key] = stateDone
		return nil
	}

	for _, start := range cfg.Starts {
		if err := visit(start); err != nil {
			return err
		}
	}
	return nil
}
