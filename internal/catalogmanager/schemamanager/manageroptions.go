package schemamanager

type OptionsConfig struct {
	Validate bool
	Source   string
}

type Options func(*OptionsConfig)

// WithValidation runs the document schema and attribute checks before the
// catalog is built. Record level checks always run.
func WithValidation(validate ...bool) Options {
	return func(cfg *OptionsConfig) {
		if len(validate) > 0 {
			cfg.Validate = validate[0]
		} else {
			cfg.Validate = true
		}
	}
}

// WithSource names where the document came from, e.g. a file path.
func WithSource(source string) Options {
	return func(cfg *OptionsConfig) {
		cfg.Source = source
	}
}
