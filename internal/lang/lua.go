package lang

func init() {
	Register(&LanguageSpec{
		Language:        Lua,
		FileExtensions:  []string{".lua"},
		ModuleNodeTypes: []string{"chunk"},
	})
}
