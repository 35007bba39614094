package lang

func init() {
	Register(&LanguageSpec{
		Language:        Go,
		FileExtensions:  []string{".go"},
		Aliases:         []string{"golang"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
