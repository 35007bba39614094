package lang

func init() {
	Register(&LanguageSpec{
		Language:        Groovy,
		FileExtensions:  []string{".groovy", ".gradle"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
