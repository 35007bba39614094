package lang

func init() {
	Register(&LanguageSpec{
		Language:        YAML,
		FileExtensions:  []string{".yml", ".yaml"},
		Aliases:         []string{"yml"},
		ModuleNodeTypes: []string{"stream"},
	})
}
