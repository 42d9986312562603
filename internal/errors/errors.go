package errors

import "errors"

// ErrDuplicateQueueNumber is returned by the ticket store when an insert
// would reuse an existing queue number.
var ErrDuplicateQueueNumber = errors.New("queue number already issued")

// ErrQueueNumberExhausted is returned when issuance cannot find a free
// queue number for a temple within the bounded retry budget. Transient:
// the caller may retry.
var ErrQueueNumberExhausted = errors.New("queue number space exhausted for temple")

// ErrTempleNotFound is returned when a request references an unknown temple.
var ErrTempleNotFound = errors.New("temple not found")

// ErrSessionNotFound is returned for unknown or expired session tokens.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnauthenticated is returned when an intent requires a signed-in user.
var ErrUnauthenticated = errors.New("session is not authenticated")
