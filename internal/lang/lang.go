package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language represents a supported grammar, named the way it is passed to --language.
type Language string

const (
	Kotlin     Language = "kotlin"
	PHP        Language = "php"
	Bash       Language = "bash"
	JSON       Language = "json"
	Dockerfile Language = "dockerfile"
	Python     Language = "python"
	Java       Language = "java"
	Rust       Language = "rust"
	Lua        Language = "lua"
	TOML       Language = "toml"
	Groovy     Language = "groovy"
	CSS        Language = "css"
	HTML       Language = "html"
	JavaScript Language = "javascript"

	Go         Language = "go"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	C          Language = "c"
	CPP        Language = "cpp"
	CSharp     Language = "c-sharp"
	Ruby       Language = "ruby"
	Scala      Language = "scala"
	YAML       Language = "yaml"
	Zig        Language = "zig"
	HCL        Language = "hcl"
	Dart       Language = "dart"
	Elixir     Language = "elixir"
	Erlang     Language = "erlang"
	Haskell    Language = "haskell"
	ObjectiveC Language = "objc"
	OCaml      Language = "ocaml"
	Perl       Language = "perl"
	R          Language = "r"
	SCSS       Language = "scss"
	SQL        Language = "sql"
	Swift      Language = "swift"
)

// AllLanguages returns all supported languages.
func AllLanguages() []Language {
	return []Language{
		Kotlin, PHP, Bash, JSON, Dockerfile, Python, Java, Rust, Lua, TOML, Groovy, CSS, HTML, JavaScript,
		Go, TypeScript, TSX, C, CPP, CSharp, Ruby, Scala, YAML, Zig, HCL,
		Dart, Elixir, Erlang, Haskell, ObjectiveC, OCaml, Perl, R, SCSS, SQL, Swift,
	}
}

// LanguageSpec describes how a language is selected and what its tree looks like.
type LanguageSpec struct {
	Language       Language
	FileExtensions []string
	// FileNames matches whole base names that carry no useful extension (e.g. "Dockerfile").
	FileNames []string
	// Aliases are extra names accepted by ForName (e.g. "js").
	Aliases []string
	// ModuleNodeTypes lists the node kinds a parsed file's root can have.
	ModuleNodeTypes []string
}

// registry maps file extensions to language specs.
var registry = map[string]*LanguageSpec{}

// byName maps language names and aliases to language specs.
var byName = map[string]*LanguageSpec{}

// Register adds a LanguageSpec to the global registry.
func Register(spec *LanguageSpec) {
	for _, ext := range spec.FileExtensions {
		registry[ext] = spec
	}
	for _, name := range spec.FileNames {
		registry[name] = spec
	}
	byName[string(spec.Language)] = spec
	for _, alias := range spec.Aliases {
		byName[alias] = spec
	}
}

// ForExtension returns the LanguageSpec for a file extension (e.g. ".py").
func ForExtension(ext string) *LanguageSpec {
	return registry[ext]
}

// ForLanguage returns the LanguageSpec for a language.
func ForLanguage(lang Language) *LanguageSpec {
	return byName[string(lang)]
}

// ForName resolves a --language value, accepting canonical names and aliases
// case-insensitively.
func ForName(name string) (Language, bool) {
	spec := byName[strings.ToLower(strings.TrimSpace(name))]
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}

// ForPath infers the language of a file from its base name, then its extension.
func ForPath(path string) (Language, bool) {
	base := filepath.Base(path)
	if spec := registry[base]; spec != nil {
		return spec.Language, true
	}
	return LanguageForExtension(strings.ToLower(filepath.Ext(base)))
}

// LanguageForExtension returns the Language for a file extension.
func LanguageForExtension(ext string) (Language, bool) {
	spec := ForExtension(ext)
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}

// Names returns the canonical names of all registered languages, sorted.
func Names() []string {
	names := make([]string, 0, len(AllLanguages()))
	for _, l := range AllLanguages() {
		if byName[string(l)] != nil {
			names = append(names, string(l))
		}
	}
	sort.Strings(names)
	return names
}
