package lang

func init() {
	Register(&LanguageSpec{
		Language:        Rust,
		FileExtensions:  []string{".rs"},
		Aliases:         []string{"rs"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
