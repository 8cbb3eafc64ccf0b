package ortho

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lgosselin/orthographe/internal/phoneme"
	"github.com/lgosselin/orthographe/internal/testutil"
)

func defaultClasses() phoneme.Classes {
	return phoneme.DefaultClasses()
}

func newRules() *Rules {
	return NewRules(defaultClasses())
}

func env(prev, post string) Env {
	return Env{Prev: prev, Post: post, Rand: testutil.FixedRand(1)}
}

func TestDoubled(t *testing.T) {
	rule := newRules().Doubled("b")

	tests := []struct {
		name string
		env  Env
		want string
	}{
		{"word end appends mute e", env("a", Boundary), "be"},
		{"intervocalic doubles", env("a", "a"), "bb"},
		{"nasal vowel on right still doubles", env("a", "̃"), "bb"},
		{"nasal vowel on left blocks doubling", env("̃", "a"), "b"},
		{"after consonant", env("s", "a"), "b"},
		{"before consonant", env("a", "t"), "b"},
		{"word start", env(Boundary, "a"), "b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule(tc.env))
		})
	}
}

func TestBoundaryRule(t *testing.T) {
	rule := newRules().BoundaryRule()

	assert.Equal(t, "h", rule(env("", "a")), "vowel-initial word gets h")
	assert.Equal(t, "", rule(env("", "p")))
	assert.Equal(t, "", rule(env("a", "")), "word-final boundary emits nothing")
}

func TestHardG(t *testing.T) {
	rule := newRules().HardG()

	tests := []struct {
		name string
		env  Env
		want string
	}{
		{"word end", env("a", Boundary), "gue"},
		{"before front vowel", env("#", "i"), "gu"},
		{"intervocalic before back vowel", env("a", "ɔ"), "gg"},
		{"word initial before back vowel", env(Boundary, "ɔ"), "g"},
		{"before consonant", env("a", "ʁ"), "g"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule(tc.env))
		})
	}
}

func TestHardK(t *testing.T) {
	rule := newRules().HardK()

	tests := []struct {
		name string
		env  Env
		want string
	}{
		{"word end after vowel", env("i", Boundary), "q"},
		{"word end after consonant", env("s", Boundary), "que"},
		{"intervocalic before back vowel", env("a", "ɔ"), "cc"},
		{"before vowel", env(Boundary, "a"), "qu"},
		{"before consonant", env("a", "t"), "c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule(tc.env))
		})
	}
}

func TestSibilant(t *testing.T) {
	rule := newRules().Sibilant()

	tests := []struct {
		name string
		env  Env
		want string
	}{
		{"word initial", env(Boundary, "a"), "s"},
		{"intervocalic geminate", env("a", "a"), "ss"},
		{"before consonant", env("a", "t"), "s"},
		{"after consonant before front vowel", env("ʁ", "i"), "c"},
		{"after consonant before back vowel", env("ʁ", "ɔ"), "ç"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule(tc.env))
		})
	}
}

func TestVoicedS(t *testing.T) {
	rule := newRules().VoicedS()

	tests := []struct {
		name string
		env  Env
		want string
	}{
		{"word end after vowel", env("ɔ", Boundary), "se"},
		{"word end after consonant", env("ʁ", Boundary), "ze"},
		{"intervocalic", env("a", "o"), "s"},
		{"elsewhere", env(Boundary, "a"), "z"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rule(tc.env))
		})
	}
}

func TestNasalRules(t *testing.T) {
	r := newRules()

	an := r.Nasal("am", "an")
	assert.Equal(t, "am", an(env("", "b")), "labial follows, close with m")
	assert.Equal(t, "an", an(env("", "t")))
	assert.Equal(t, "an", an(env("", Boundary)), "word end is not labial")

	on := r.NasalFinal("om", "on")
	assert.Equal(t, "om", on(env("", "p")))
	assert.Equal(t, "om", on(env("", Boundary)), "word end closes with m")
	assert.Equal(t, "on", on(env("", "d")))
}

func TestRoundedEU(t *testing.T) {
	rule := newRules().RoundedEU()

	assert.Equal(t, "eux", rule(env("a", Boundary)))
	assert.Equal(t, "eu", rule(env(Boundary, "ʁ")))
	assert.Equal(t, "eû", rule(env("ʁ", "ʁ")))
}

func TestRoundedUN(t *testing.T) {
	rule := newRules().RoundedUN()

	assert.Equal(t, "eun", rule(env("ʁ", Boundary)))
	assert.Equal(t, "um", rule(env("ʁ", "b")))
	assert.Equal(t, "un", rule(env("ʁ", "t")))
}

func TestIntervocalic(t *testing.T) {
	rule := newRules().Intervocalic("ff", "f")

	assert.Equal(t, "ff", rule(env("a", "i")))
	assert.Equal(t, "ff", rule(env("̃", "a")), "nasal counts on the left here")
	assert.Equal(t, "f", rule(env("a", "ʁ")))
	assert.Equal(t, "f", rule(env(Boundary, "a")))
}

func TestFinalAlt(t *testing.T) {
	rule := newRules().FinalAlt("re", "r")

	assert.Equal(t, "re", rule(env("a", Boundary)))
	assert.Equal(t, "r", rule(env("a", "ɔ")))
}

func TestRandomizedRules_AlternativeSets(t *testing.T) {
	r := newRules()
	rng := testutil.FixedRand(99)

	// Each draw must land in the fixed alternative set; over many draws
	// every alternative should appear.
	draws := func(rule Rule, e Env) map[string]bool {
		seen := map[string]bool{}
		for i := 0; i < 64; i++ {
			e.Rand = rng
			seen[rule(e)] = true
		}
		return seen
	}

	openE := draws(r.OpenE(), Env{Prev: "p", Post: "ʁ"})
	assert.Equal(t, map[string]bool{"ai": true, "è": true}, openE)

	softG := draws(r.SoftG(), Env{Prev: "a", Post: "i"})
	assert.Equal(t, map[string]bool{"g": true, "j": true}, softG)

	softGElse := draws(r.SoftG(), Env{Prev: "a", Post: "ɔ"})
	assert.Equal(t, map[string]bool{"ge": true, "j": true}, softGElse)

	nasalIn := draws(r.NasalIN(), Env{Prev: "p", Post: Boundary})
	assert.Equal(t, map[string]bool{"aim": true, "im": true}, nasalIn)

	nasalInMid := draws(r.NasalIN(), Env{Prev: "p", Post: "t"})
	assert.Equal(t, map[string]bool{"ain": true, "in": true}, nasalInMid)
}

func TestOpenE_WordEndIsDeterministic(t *testing.T) {
	rule := newRules().OpenE()
	assert.Equal(t, "ay", rule(env("p", Boundary)))
}

func TestSoftG_WordEnd(t *testing.T) {
	rule := newRules().SoftG()
	assert.Equal(t, "ge", rule(env("a", Boundary)))
}
