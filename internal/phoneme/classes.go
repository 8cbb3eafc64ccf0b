package phoneme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Classes defines the symbol classes the classifier and the orthography
// rules consult. Each field is a plain string of runes; membership is
// per-rune. The sets may overlap (velars are also stops, glides may also
// appear in the vowel set).
//
// Vowels, Liquids, Stops, Glides and Velars drive syllabification.
// Labials, Front and Back are only consulted by orthography rules.
type Classes struct {
	Vowels  string `yaml:"vowels"`
	Liquids string `yaml:"liquids"`
	Stops   string `yaml:"stops"`
	Glides  string `yaml:"glides"`
	Velars  string `yaml:"velars"`
	Labials string `yaml:"labials"`
	Front   string `yaml:"front"`
	Back    string `yaml:"back"`
}

// DefaultClasses returns the compiled-in French-family symbol classes.
//
// Vowels are the +syllabic -consonantal symbols, liquids the laterals and
// rhotics, stops the -continuant symbols. Front and Back partition the
// vowel space for spelling rules (c/qu, g/gu choices).
func DefaultClasses() Classes {
	return Classes{
		Vowels:  "əɜiyɪʏeøɛœæᴂaɶɨʉɘɵɞᴀɯuωʊɤoʌɔɑɒɐ",
		Liquids: "ɾrɹɬɮlɫɺʎʟʁʀ",
		Stops:   "pbtdcɟkɡgqɢʔ",
		Glides:  "w",
		Velars:  "kɡg",
		Labials: "pb",
		Front:   "ɜiyɪʏeøɛœæᴂaɶ",
		Back:    "ɨʉɘɵɞᴀɯuωʊɤoʌɔɑɒɐ",
	}
}

// LoadClasses reads a Classes definition from a YAML file.
// Fields left empty in the file fall back to the defaults, so a
// configuration may override a single class without restating the rest.
func LoadClasses(path string) (Classes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Classes{}, fmt.Errorf("read classes file: %w", err)
	}

	c := DefaultClasses()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Classes{}, fmt.Errorf("parse classes file %s: %w", path, err)
	}
	return c, nil
}

// runeSet compiles a class string into a membership set.
func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
