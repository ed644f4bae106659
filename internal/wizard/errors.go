package wizard

import "errors"

// ErrSubmitInFlight is returned by BeginSubmit while a previous create
// call has not finished. Submission is exclusive: a second confirm tap
// must not fire a second request.
var ErrSubmitInFlight = errors.New("trip submission already in flight")
