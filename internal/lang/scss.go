package lang

func init() {
	Register(&LanguageSpec{
		Language:        SCSS,
		FileExtensions:  []string{".scss"},
		ModuleNodeTypes: []string{"stylesheet"},
	})
}
