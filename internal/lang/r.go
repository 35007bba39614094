package lang

func init() {
	Register(&LanguageSpec{
		Language:        R,
		FileExtensions:  []string{".r"},
		ModuleNodeTypes: []string{"program"},
	})
}
