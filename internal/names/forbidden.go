package names

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
)

// listVersionConstraint is the range of forbidden-list format versions
// this package understands.
var listVersionConstraint = mustConstraint("^1.0.0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(fmt.Sprintf("names: bad built-in constraint %q: %v", s, err))
	}

	return c
}

// ConfigurationError reports a malformed forbidden-name list.
type ConfigurationError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("forbidden-name list: %s", e.Reason)
	}

	return fmt.Sprintf("forbidden-name list %s: %s", e.Path, e.Reason)
}

// ForbiddenList is the external denylist document. Each language section
// carries the reserved words of one target output language.
type ForbiddenList struct {
	Version   string            `yaml:"version"`
	Languages []LanguageSection `yaml:"languages"`
}

// LanguageSection is one target language's reserved words.
type LanguageSection struct {
	Name     string   `yaml:"name"`
	Reserved []string `yaml:"reserved"`
}

// LoadForbidden reads and validates a YAML forbidden-name list from
// path without touching any table.
func LoadForbidden(path string) (*ForbiddenList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Reason: err.Error()}
	}

	list, err := decodeForbidden(data)
	if err != nil {
		if ce, ok := err.(*ConfigurationError); ok {
			ce.Path = path
		}

		return nil, err
	}

	return list, nil
}

// LoadForbidden reads a YAML forbidden-name list from path and registers
// every entry on the table's denylist. Entries are taken verbatim; no
// case folding is applied.
func (t *Table) LoadForbidden(path string) error {
	list, err := LoadForbidden(path)
	if err != nil {
		return err
	}

	return t.registerForbidden(list)
}

// ParseForbidden parses a YAML forbidden-name list and registers every
// entry on the denylist. Loading the same language section twice into
// one table is a fatal configuration-key collision.
func (t *Table) ParseForbidden(data []byte) error {
	list, err := decodeForbidden(data)
	if err != nil {
		return err
	}

	return t.registerForbidden(list)
}

func decodeForbidden(data []byte) (*ForbiddenList, error) {
	var list ForbiddenList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid YAML: %v", err)}
	}

	if list.Version == "" {
		return nil, &ConfigurationError{Reason: "missing version field"}
	}

	v, err := semver.NewVersion(list.Version)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid version %q: %v", list.Version, err)}
	}

	if !listVersionConstraint.Check(v) {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("version %s outside supported range %s", v, listVersionConstraint),
		}
	}

	if len(list.Languages) == 0 {
		return nil, &ConfigurationError{Reason: "no language sections"}
	}

	for _, lang := range list.Languages {
		if lang.Name == "" {
			return nil, &ConfigurationError{Reason: "language section without a name"}
		}
	}

	return &list, nil
}

func (t *Table) registerForbidden(list *ForbiddenList) error {
	for _, lang := range list.Languages {
		if _, dup := t.languages[lang.Name]; dup {
			// Invariant violation: a fixed configuration key may be
			// registered exactly once per table.
			panic(fmt.Sprintf("names: language section %q registered twice", lang.Name))
		}
		t.languages[lang.Name] = struct{}{}

		for _, word := range lang.Reserved {
			t.Forbid(word)
		}
	}

	return nil
}

// HasLanguage reports whether a language section has been loaded.
func (t *Table) HasLanguage(name string) bool {
	_, ok := t.languages[name]
	return ok
}
