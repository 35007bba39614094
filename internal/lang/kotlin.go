package lang

func init() {
	Register(&LanguageSpec{
		Language:        Kotlin,
		FileExtensions:  []string{".kt", ".kts"},
		Aliases:         []string{"kt"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
