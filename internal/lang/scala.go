package lang

func init() {
	Register(&LanguageSpec{
		Language:        Scala,
		FileExtensions:  []string{".scala", ".sc"},
		ModuleNodeTypes: []string{"compilation_unit"},
	})
}
