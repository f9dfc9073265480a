package ports

// FingerprintCache is a caching collector tier whose records can be dropped.
//
//go:generate mockgen -destination=mocks/mock_tier.go -package=mocks -source=tier.go
type FingerprintCache interface {
	FileInfoCollector
	// Clear drops every record of the tier.
	Clear() error
}

// InvalidatingCache is a tier that can also drop the records of changed paths.
type InvalidatingCache interface {
	FingerprintCache
	// Invalidate drops the records of the given paths.
	Invalidate(paths []string) error
}
