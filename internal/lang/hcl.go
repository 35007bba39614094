package lang

func init() {
	Register(&LanguageSpec{
		Language:        HCL,
		FileExtensions:  []string{".tf", ".hcl"},
		Aliases:         []string{"terraform"},
		ModuleNodeTypes: []string{"config_file"},
	})
}
