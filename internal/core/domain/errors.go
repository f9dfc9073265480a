package domain

import "go.trai.ch/zerr"

var (
	// ErrNotRegularFile is returned when a fingerprint is requested for a directory or special file.
	ErrNotRegularFile = zerr.New("not a regular file")

	// ErrInvalidCacheRoot is returned when a configured global cache root cannot be used.
	ErrInvalidCacheRoot = zerr.New("invalid global cache root")

	// ErrStoreLocked is returned when another process holds the global store lock.
	ErrStoreLocked = zerr.New("global store is locked by another process")

	// ErrInvalidConfig is returned when the configuration file contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrPathNotFound is returned when a path or pattern matches nothing on disk.
	ErrPathNotFound = zerr.New("path not found")

	// ErrNoPathsSpecified is returned when a command that needs paths receives none.
	ErrNoPathsSpecified = zerr.New("no paths specified")
)
