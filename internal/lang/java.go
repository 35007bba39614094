package lang

func init() {
	Register(&LanguageSpec{
		Language:        Java,
		FileExtensions:  []string{".java"},
		ModuleNodeTypes: []string{"program"},
	})
}
