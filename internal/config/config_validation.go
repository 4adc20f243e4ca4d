package config

// defaultConfig returns the built-in lowest-priority configuration values.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Firestore: Firestore{
				RequestTimeout: defaultFirestoreTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Storage.Firestore.RequestTimeout <= 0 {
		return ErrInvalidTimeoutConfigs
	}

	return nil
}
