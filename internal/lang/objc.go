package lang

func init() {
	Register(&LanguageSpec{
		Language:        ObjectiveC,
		FileExtensions:  []string{".m"},
		Aliases:         []string{"objective-c", "objectivec"},
		ModuleNodeTypes: []string{"translation_unit"},
	})
}
