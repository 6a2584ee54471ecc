package workers

import "errors"

var errQueueFull = errors.New("mail queue is full")
