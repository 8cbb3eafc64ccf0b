package ortho

// BuildFrenchTable binds the default French-style correspondence table.
// Keys are phoneme-string fragments; multi-phoneme keys bleed the shorter
// entries they extend under longest-match. Every symbol of the target
// alphabet, the boundary marker included, has a single-rune fallback key.
func BuildFrenchTable(r *Rules) *Table {
	t := NewTable()

	t.Insert(Boundary, r.BoundaryRule())

	t.Insert("a", Literal("a"))
	t.Insert("aɛ", Literal("aë"))
	t.Insert("aɛ̃", Literal("aïn"))
	t.Insert("ai", Literal("aï"))
	t.Insert("au", Literal("aou"))
	t.Insert("ɑ", Literal("â"))
	t.Insert("ɑ̃", r.Nasal("am", "an"))
	t.Insert("b", r.Doubled("b"))
	t.Insert("d", r.Doubled("d"))
	t.Insert("e", r.FinalAlt("er", "é"))
	t.Insert("ə", Literal("e"))
	t.Insert("ɛ", r.OpenE())
	t.Insert("ɛ̃", r.NasalIN())
	t.Insert("ɛj", Literal("ay"))
	t.Insert("f", r.Intervocalic("ff", "f"))
	t.Insert("ɡ", r.HardG())
	t.Insert("i", r.FinalAlt("ie", "i"))
	t.Insert("j", Rule(func(env Env) string {
		if boundary(env.Prev) {
			return "ï"
		}
		return "i"
	}))
	t.Insert("jɛ", Literal("ie"))
	t.Insert("jɛ̃", r.Nasal("iem", "ien"))
	t.Insert("k", r.HardK())
	t.Insert("ks", Rule(func(env Env) string {
		if r.vowelOrNasal(env.Prev) && r.frontVowel(env.Post) {
			return "cc"
		}
		return "x"
	}))
	t.Insert("kt", Literal("ct"))
	t.Insert("l", r.Doubled("l"))
	t.Insert("m", r.Doubled("m"))
	t.Insert("n", r.Doubled("n"))
	t.Insert("ɲ", Literal("gn"))
	t.Insert("o", r.FinalAlt("ot", "au"))
	t.Insert("oʁ", Literal("or")) // bleeds the plain o entry
	t.Insert("oz", r.FinalAlt("ose", "os"))
	t.Insert("ø", r.RoundedEU())
	t.Insert("œ", Rule(func(env Env) string {
		if r.consonant(env.Post) {
			return "œu"
		}
		return "œ"
	}))
	t.Insert("œ̃", r.RoundedUN())
	t.Insert("ɔ", Literal("o"))
	t.Insert("ɔ̃", r.NasalFinal("om", "on"))
	t.Insert("ɔɛ", Literal("oë"))
	t.Insert("ɔɛ̃", Literal("oën"))
	t.Insert("ɔi", Literal("oï"))
	t.Insert("ɔʁ", Literal("aur"))
	t.Insert("p", r.Doubled("p"))
	t.Insert("ʁ", r.FinalAlt("re", "r"))
	t.Insert("s", r.Sibilant())
	t.Insert("ʃ", Literal("ch"))
	t.Insert("t", r.Doubled("t"))
	t.Insert("u", r.FinalAlt("oue", "ou"))
	t.Insert("ɥ", Literal("u"))
	t.Insert("ɥij", Literal("uy"))
	t.Insert("v", r.FinalAlt("ve", "v"))
	t.Insert("w", Literal("ou"))
	t.Insert("wa", Literal("oi"))
	t.Insert("wɛ̃", Literal("oin"))
	t.Insert("y", r.FinalAlt("ue", "u"))
	t.Insert("z", r.VoicedS())
	t.Insert("ʒ", r.SoftG())

	return t
}
