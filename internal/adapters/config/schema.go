package config

// Fingerprintfile represents the structure of the fingerprint.yaml configuration file.
type Fingerprintfile struct {
	Version string    `yaml:"version"`
	Global  GlobalDTO `yaml:"global"`
	Local   LocalDTO  `yaml:"local"`
	Workers int       `yaml:"workers"`
}

// GlobalDTO configures the global (immutable) tier.
type GlobalDTO struct {
	Roots           []string `yaml:"roots"`
	Store           string   `yaml:"store"`
	ResolveSymlinks bool     `yaml:"resolve_symlinks"`
}

// LocalDTO configures the local (mutable) tier.
type LocalDTO struct {
	Store      string `yaml:"store"`
	RacyWindow string `yaml:"racy_window"`
}
