package lang

func init() {
	Register(&LanguageSpec{
		Language:        Dart,
		FileExtensions:  []string{".dart"},
		ModuleNodeTypes: []string{"program"},
	})
}
