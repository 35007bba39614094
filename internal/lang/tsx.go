package lang

func init() {
	Register(&LanguageSpec{
		Language:        TSX,
		FileExtensions:  []string{".tsx"},
		ModuleNodeTypes: []string{"program"},
	})
}
