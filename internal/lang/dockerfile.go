package lang

func init() {
	Register(&LanguageSpec{
		Language:        Dockerfile,
		FileExtensions:  []string{".dockerfile"},
		FileNames:       []string{"Dockerfile", "Containerfile"},
		Aliases:         []string{"docker"},
		ModuleNodeTypes: []string{"source_file"},
	})
}
