package carver

import "errors"

// ErrOvertime indicates the carving watchdog's deadline elapsed before the
// outer carving loop finished. The caller (pipeline) recovers at group
// granularity: the group's partial routes are discarded and its graph is
// dumped for offline analysis.
var ErrOvertime = errors.New("carver: watchdog deadline exceeded")
