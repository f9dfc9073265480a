package ports

// GlobalCacheLocations classifies paths into the global cache storage area.
//
//go:generate mockgen -destination=mocks/mock_locations.go -package=mocks -source=locations.go
type GlobalCacheLocations interface {
	// IsInsideGlobalCache reports whether path lies inside a global cache storage area.
	IsInsideGlobalCache(path string) (bool, error)
}
