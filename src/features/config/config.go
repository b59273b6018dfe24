package config

// Config holds the application configuration.
type Config struct {
	Logger  Logger  `yaml:"logger"`
	Catalog Catalog `yaml:"catalog"`
	Metrics Metrics `yaml:"metrics"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json text logfmt"`
}

// Catalog holds the configuration of the in-memory album catalog
type Catalog struct {
	// Timezone is used to decide which year "this year" is for release dates.
	Timezone string `yaml:"timezone" validate:"required,timezone"`
	// MaxAlbums caps the number of albums in the catalog, 0 means unlimited.
	MaxAlbums           int  `yaml:"max_albums" validate:"gte=0"`
	SearchTransliterate bool `yaml:"search_transliterate"`
}

// Metrics holds the configuration for the prometheus collector
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"omitempty,alpha,lowercase"`
}
