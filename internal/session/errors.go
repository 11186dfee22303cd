package session

import "errors"

// ErrLimitReached indicates the session exhausted its free-tier cap.
var ErrLimitReached = errors.New("free tier limit reached")
