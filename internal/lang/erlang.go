package lang

func init() {
	Register(&LanguageSpec{
		Language:        Erlang,
		FileExtensions:  []string{".erl", ".hrl"},
		Aliases:         []string{"erl"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
