package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrConnectionFailed returned when an explicit connect attempt against a
// mod server fails either the health check or the first coordinate fetch
var ErrConnectionFailed = errors.New("connection failed")
