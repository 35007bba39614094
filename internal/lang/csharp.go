package lang

func init() {
	Register(&LanguageSpec{
		Language:        CSharp,
		FileExtensions:  []string{".cs"},
		Aliases:         []string{"csharp", "c#"},
		ModuleNodeTypes: []string{"compilation_unit"},
	})
}
