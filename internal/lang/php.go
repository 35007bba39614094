package lang

func init() {
	Register(&LanguageSpec{
		Language:        PHP,
		FileExtensions:  []string{".php", ".phtml"},
		ModuleNodeTypes: []string{"program"},
	})
}
