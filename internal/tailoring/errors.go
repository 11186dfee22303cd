package tailoring

import "errors"

// ErrMalformedResponse indicates the backend output was not JSON at all.
// This is the one fatal parse condition; missing fields merely default.
var ErrMalformedResponse = errors.New("backend response is not valid JSON")
