package lang

func init() {
	Register(&LanguageSpec{
		Language:        CSS,
		FileExtensions:  []string{".css"},
		ModuleNodeTypes: []string{"stylesheet"},
	})
}
