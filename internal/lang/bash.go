package lang

func init() {
	Register(&LanguageSpec{
		Language:        Bash,
		FileExtensions:  []string{".sh", ".bash"},
		Aliases:         []string{"sh", "shell"},
		ModuleNodeTypes: []string{"program"},
	})
}
