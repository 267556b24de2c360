package wells

import "errors"

// ErrWellType is returned when a well's type is neither Injector nor Producer.
var ErrWellType = errors.New("unknown well type")

// ErrNoConnections is returned when a well has no perforated cells.
var ErrNoConnections = errors.New("well has no connections")

// ErrNoControls is returned when a well carries an empty control stack.
var ErrNoControls = errors.New("well has no controls")

// ErrControlIndex is returned when the current-control index falls outside the stack.
var ErrControlIndex = errors.New("current control index out of range")

// ErrDistribution is returned when a surface-rate phase distribution is malformed.
var ErrDistribution = errors.New("invalid phase distribution")

// ErrPhases is returned when a fleet declares a non-positive phase count.
var ErrPhases = errors.New("invalid phase count")
