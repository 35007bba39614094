package lang

func init() {
	Register(&LanguageSpec{
		Language:        C,
		FileExtensions:  []string{".c"},
		ModuleNodeTypes: []string{"translation_unit"},
	})
}
