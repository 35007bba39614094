package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/DeusData/ts-highlight/internal/dot"
	"github.com/DeusData/ts-highlight/internal/lang"
	"github.com/DeusData/ts-highlight/internal/parser"
)

func printAST(node *tree_sitter.Node, source []byte, indent int) {
	if node == nil {
		return
	}
	prefix := strings.Repeat("  ", indent)
	field := ""
	if parent := node.Parent(); parent != nil {
		for i := uint(0); i < parent.ChildCount(); i++ {
			if c := parent.Child(i); c != nil && c.Id() == node.Id() {
				field = parent.FieldNameForChild(uint32(i))
				break
			}
		}
	}
	if field != "" {
		field += ": "
	}
	fmt.Printf("%s%s%s [%d,%d) \"%s\"\n", prefix, field, node.Kind(), node.StartByte(), node.EndByte(),
		dot.Snippet(parser.NodeText(node, source)))
	for i := uint(0); i < node.ChildCount(); i++ {
		printAST(node.Child(i), source, indent+1)
	}
}

var samples = []struct {
	title string
	lang  lang.Language
	code  string
}{
	{"PYTHON ASSIGNMENT", lang.Python, `test = "1"`},
	{"RUST LET", lang.Rust, "let x = 1;"},
	{"KOTLIN EMOJI STRING", lang.Kotlin, "val test = \"\U0001F604\"\n"},
	{"GROOVY GRADLE", lang.Groovy, "apply plugin: 'java'\n"},
}

func main() {
	language := pflag.StringP("language", "l", "", "grammar to parse with")
	code := pflag.StringP("code", "c", "", "code to dump; without it a few built-in samples are dumped")
	pflag.Parse()

	if *code == "" {
		for i, s := range samples {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("=== %s ===\n", s.title)
			dump(s.lang, []byte(s.code))
		}
		return
	}

	l, ok := lang.ForName(*language)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown --language %q (supported: %s)\n", *language, strings.Join(lang.Names(), ", "))
		os.Exit(2)
	}
	if !dump(l, []byte(*code)) {
		os.Exit(1)
	}
}

func dump(l lang.Language, source []byte) bool {
	tree, err := parser.Parse(l, source)
	if err != nil {
		fmt.Println("Error:", err)
		return false
	}
	defer tree.Close()
	printAST(tree.RootNode(), source, 0)
	return true
}
