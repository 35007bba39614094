package lang

func init() {
	Register(&LanguageSpec{
		Language:        Haskell,
		FileExtensions:  []string{".hs"},
		Aliases:         []string{"hs"},
		ModuleNodeTypes: []string{"haskell"},
	})
}
