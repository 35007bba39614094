package lang

func init() {
	Register(&LanguageSpec{
		Language:        Ruby,
		FileExtensions:  []string{".rb", ".rake", ".gemspec"},
		Aliases:         []string{"rb"},
		ModuleNodeTypes: []string{"program"},
	})
}
