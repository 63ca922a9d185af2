package common

import "errors"

// ErrStorageFailure wraps unexpected persistence errors so that callers can
// distinguish "your request was invalid" from "the system could not complete
// your valid request". Services wrap driver errors with this sentinel via
// fmt.Errorf("%w: ...", ErrStorageFailure, ...).
var ErrStorageFailure = errors.New("storage failure")
