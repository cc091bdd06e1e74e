// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates an infrastructure failure (database, token signing, hashing).
// Its message is the only detail ever returned to clients for such failures.
var ErrInternal = errors.New("internal")
