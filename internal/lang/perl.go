package lang

func init() {
	Register(&LanguageSpec{
		Language:        Perl,
		FileExtensions:  []string{".pl", ".pm"},
		Aliases:         []string{"pl"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
