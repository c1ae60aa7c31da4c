package egraph

import "juniper/internal/bigrat"

// EClass is an equivalence class of e-nodes. Nodes is de-duplicated by
// signature (hash-cons); Data carries the constant-fold analysis datum,
// nil meaning "no known constant value".
type EClass struct {
	ID     ID
	Nodes  []ENode
	Data   *bigrat.Rat
	Folded bool // true once the constant-fold modify hook has pruned this class
}
