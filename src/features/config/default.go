package config

var defaultConfig = Config{
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Catalog: Catalog{
		Timezone:            "UTC",
		MaxAlbums:           0,
		SearchTransliterate: true,
	},
	Metrics: Metrics{
		Enabled:   true,
		Namespace: "pressing",
	},
}

// Default returns a copy of the default configuration.
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}
