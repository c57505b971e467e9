package sync

import "errors"

// ErrSyncInProgress is returned when a reconciliation pass is requested
// while another one is still running. The caller should treat it as a
// skip, not a failure.
var ErrSyncInProgress = errors.New("sync already in progress")
