package lang

func init() {
	Register(&LanguageSpec{
		Language:        JavaScript,
		FileExtensions:  []string{".js", ".jsx", ".mjs", ".cjs"},
		Aliases:         []string{"js"},
		ModuleNodeTypes: []string{"program"},
	})
}
