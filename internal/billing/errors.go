package billing

import "errors"

// ErrUnavailable indicates the billing RPC failed: transport error, remote
// error, or a malformed/absent response. Callers treat all of these the
// same way, as a failure of the whole provisioning attempt.
var ErrUnavailable = errors.New("billing service unavailable")
