package lang

func init() {
	Register(&LanguageSpec{
		Language:        Elixir,
		FileExtensions:  []string{".ex", ".exs"},
		Aliases:         []string{"ex"},
		ModuleNodeTypes: []string{"source"},
	})
}
