package lang

func init() {
	Register(&LanguageSpec{
		Language:        Python,
		FileExtensions:  []string{".py", ".pyi"},
		Aliases:         []string{"py"},
		ModuleNodeTypes: []string{"module"},
	})
}
