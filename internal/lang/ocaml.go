package lang

func init() {
	Register(&LanguageSpec{
		Language:        OCaml,
		FileExtensions:  []string{".ml"},
		Aliases:         []string{"ml"},
		ModuleNodeTypes: []string{"compilation_unit"},
	})
}
