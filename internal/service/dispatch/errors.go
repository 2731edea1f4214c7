package dispatch

import "errors"

var ErrFeedClosed = errors.New("feed is closed")
