package context

import "errors"

// ErrAlreadyCommitted is returned when actions are added or committed after
// a successful Commit.
var ErrAlreadyCommitted = errors.New("request context already committed")
