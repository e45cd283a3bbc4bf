package stickering

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	defaultOption Option
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		defaultOption: Ignored,
	}
}

// WithDefault sets the option given to every piece the stickering does not name.
// The default is Ignored.
func WithDefault(o Option) BuildOption {
	return func(c *buildConfig) {
		c.defaultOption = o
	}
}
