package lang

func init() {
	Register(&LanguageSpec{
		Language:        CPP,
		FileExtensions:  []string{".cpp", ".h", ".hpp", ".cc", ".cxx", ".hxx", ".hh"},
		Aliases:         []string{"c++"},
		ModuleNodeTypes: []string{"translation_unit"},
	})
}
