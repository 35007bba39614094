package lang

func init() {
	Register(&LanguageSpec{
		Language:        Swift,
		FileExtensions:  []string{".swift"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
