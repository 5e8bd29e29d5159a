package workupdate

import "errors"

var ErrWorkUpdateNotFound = errors.New("work update not found")
