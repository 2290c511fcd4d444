package seed

// DirectoryConfig is the root structure of the alumni seed file: a list of
// headings (batch, department...), each holding a list of single-key maps
// from profile name to ProfileProps. Same shape as a Homepage services.yaml.
type DirectoryConfig []map[string][]map[string]ProfileProps

// ProfileProps are the attributes of one profile. Keys without a typed
// field are kept in Extra and stored with the profile.
type ProfileProps struct {
	Company string         `yaml:"company,omitempty"`
	Role    string         `yaml:"role,omitempty"`
	Timing  string         `yaml:"timing,omitempty"`
	Skills  []string       `yaml:"skills,omitempty"`
	Fees    string         `yaml:"fees,omitempty"`
	Certs   []string       `yaml:"certs,omitempty"`
	Extra   map[string]any `yaml:",inline"`
}
