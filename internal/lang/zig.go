package lang

func init() {
	Register(&LanguageSpec{
		Language:        Zig,
		FileExtensions:  []string{".zig"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
