package ortho

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TableConfig is the YAML form of a production table, for targeting a
// different orthography without recompiling. Entries bind keys to either a
// literal spelling or a named rule from the rule library.
type TableConfig struct {
	Entries []EntryConfig `yaml:"entries"`
}

// EntryConfig is one key binding. When Rule is set the entry refers to the
// rule library and Literal is ignored; parameterized rules take their
// spelling alternatives in Arg, separated by "|". An empty Literal with no
// Rule is a valid binding that emits nothing.
type EntryConfig struct {
	Key     string `yaml:"key"`
	Literal string `yaml:"literal,omitempty"`
	Rule    string `yaml:"rule,omitempty"`
	Arg     string `yaml:"arg,omitempty"`
}

// ruleConstructors maps configuration rule names to rule-library
// constructors. Names describe behavior, not symbols, so a configuration
// for another language can reuse them freely.
var ruleConstructors = map[string]func(r *Rules, arg string) (Rule, error){
	"boundary": func(r *Rules, arg string) (Rule, error) {
		return r.BoundaryRule(), nil
	},
	"doubled": func(r *Rules, arg string) (Rule, error) {
		if arg == "" {
			return nil, fmt.Errorf("doubled requires a letter argument")
		}
		return r.Doubled(arg), nil
	},
	"final": func(r *Rules, arg string) (Rule, error) {
		end, elsewhere, err := splitArg(arg)
		if err != nil {
			return nil, err
		}
		return r.FinalAlt(end, elsewhere), nil
	},
	"intervocalic": func(r *Rules, arg string) (Rule, error) {
		double, single, err := splitArg(arg)
		if err != nil {
			return nil, err
		}
		return r.Intervocalic(double, single), nil
	},
	"nasal": func(r *Rules, arg string) (Rule, error) {
		labial, plain, err := splitArg(arg)
		if err != nil {
			return nil, err
		}
		return r.Nasal(labial, plain), nil
	},
	"nasal-final": func(r *Rules, arg string) (Rule, error) {
		labial, plain, err := splitArg(arg)
		if err != nil {
			return nil, err
		}
		return r.NasalFinal(labial, plain), nil
	},
	"nasal-in": func(r *Rules, arg string) (Rule, error) {
		return r.NasalIN(), nil
	},
	"open-e": func(r *Rules, arg string) (Rule, error) {
		return r.OpenE(), nil
	},
	"hard-g": func(r *Rules, arg string) (Rule, error) {
		return r.HardG(), nil
	},
	"hard-k": func(r *Rules, arg string) (Rule, error) {
		return r.HardK(), nil
	},
	"sibilant": func(r *Rules, arg string) (Rule, error) {
		return r.Sibilant(), nil
	},
	"voiced-s": func(r *Rules, arg string) (Rule, error) {
		return r.VoicedS(), nil
	},
	"soft-g": func(r *Rules, arg string) (Rule, error) {
		return r.SoftG(), nil
	},
	"rounded-eu": func(r *Rules, arg string) (Rule, error) {
		return r.RoundedEU(), nil
	},
	"rounded-un": func(r *Rules, arg string) (Rule, error) {
		return r.RoundedUN(), nil
	},
}

func splitArg(arg string) (string, string, error) {
	parts := strings.SplitN(arg, "|", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("argument %q: want two spellings separated by |", arg)
	}
	return parts[0], parts[1], nil
}

// LoadTableConfig reads a table definition from a YAML file.
func LoadTableConfig(path string) (*TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table file: %w", err)
	}

	var cfg TableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse table file %s: %w", path, err)
	}
	if len(cfg.Entries) == 0 {
		return nil, fmt.Errorf("table file %s defines no entries", path)
	}
	return &cfg, nil
}

// Build compiles the configuration into a table using the given rule
// library. It is the configuration author's responsibility to cover every
// legal symbol with a single-rune key; Build only validates the individual
// bindings.
func (cfg *TableConfig) Build(r *Rules) (*Table, error) {
	t := NewTable()
	for i, e := range cfg.Entries {
		if e.Key == "" {
			return nil, fmt.Errorf("entry %d: empty key", i)
		}
		if e.Rule == "" {
			t.Insert(e.Key, Literal(e.Literal))
			continue
		}
		ctor, ok := ruleConstructors[e.Rule]
		if !ok {
			return nil, fmt.Errorf("entry %d (key %q): unknown rule %q", i, e.Key, e.Rule)
		}
		rule, err := ctor(r, e.Arg)
		if err != nil {
			return nil, fmt.Errorf("entry %d (key %q): %w", i, e.Key, err)
		}
		t.Insert(e.Key, rule)
	}
	return t, nil
}
