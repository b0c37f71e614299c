package domain

// Personality mirrors ~/.terminai/persona.yaml. The zero value is a valid
// "uninitialized" persona, not an error: prompts embed empty strings.
type Personality struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// IsZero reports whether no persona has been initialized.
func (p Personality) IsZero() bool {
	return p.Name == "" && p.Description == ""
}
