package lang

func init() {
	Register(&LanguageSpec{
		Language:        TypeScript,
		FileExtensions:  []string{".ts", ".mts", ".cts"},
		Aliases:         []string{"ts"},
		ModuleNodeTypes: []string{"program"},
	})
}
