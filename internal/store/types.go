package store

// Defaults represents the TOML written (by default) to
// .tably/config.toml. Zero values mean "not configured"; the render
// command falls back to the table package's own defaults.
type Defaults struct {

	// The box-drawing style applied when --style is not given.
	Style string `toml:"style,omitempty"`

	// The cell padding applied when --padding is not given. A nil
	// pointer distinguishes "unset" from an explicit zero.
	Padding *int `toml:"padding,omitempty"`

	// Whether cells are centered when --centered is not given.
	Centered *bool `toml:"centered,omitempty"`
}
