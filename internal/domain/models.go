package domain

// ItemSpec describes a list entry as configured by the user
type ItemSpec struct {
	Label    string `yaml:"label" toml:"label"`
	Disabled bool   `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// SelectionSnapshot is a point-in-time view of a widget's selection
type SelectionSnapshot struct {
	Source  string   // widget name, e.g. "list" or "selectbox"
	Mode    string   // selection mode of the source
	Labels  []string // selected labels in container order
	Lead    string   // label of the lead item ("" if none)
	Context string   // gesture that produced the change
}
