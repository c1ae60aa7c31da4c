package theorem

import "github.com/pkg/errors"

// ErrUnknownIdentifier wraps a prover identifier absent from the name table
// (§4.7.2). REDESIGN: earlier drafts of this system silently treated any
// unresolved identifier as π; that was a bug, not a feature, and is fixed
// here by rejecting the theorem outright.
var ErrUnknownIdentifier = errors.New("theorem: unknown prover identifier")

// ErrIRShape wraps any application-lowering or splitting failure: a slot
// filled with the wrong shape, a missing slot, an unexpected binder, or a
// theorem whose body never reaches a top-level equality.
var ErrIRShape = errors.New("theorem: malformed intermediate representation")

// ErrRewriteConstruction wraps a direction (forward or backward) whose
// right-hand pattern references a variable not bound on its left.
var ErrRewriteConstruction = errors.New("theorem: rewrite construction failed")
