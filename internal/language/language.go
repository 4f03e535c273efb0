// Package language holds the registry of solution languages: file
// extensions, comment syntax, and the solution skeletons the renderer
// emits. The registry is a fixed map; adding a language is one entry.
package language

// Language describes one registered solution language.
type Language struct {
	Name        string
	Ext         string // includes the leading dot
	LineComment string // prefix for one-line comments
	Skeleton    string // solve + multi-test driver; empty means stub fallback
}

var registry = map[string]Language{
	"C++":        {Name: "C++", Ext: ".cpp", LineComment: "//", Skeleton: cppSkeleton},
	"Python":     {Name: "Python", Ext: ".py", LineComment: "#", Skeleton: pythonSkeleton},
	"Java":       {Name: "Java", Ext: ".java", LineComment: "//", Skeleton: javaSkeleton},
	"JavaScript": {Name: "JavaScript", Ext: ".js", LineComment: "//"},
	"Go":         {Name: "Go", Ext: ".go", LineComment: "//", Skeleton: goSkeleton},
	"Kotlin":     {Name: "Kotlin", Ext: ".kt", LineComment: "//"},
	"Rust":       {Name: "Rust", Ext: ".rs", LineComment: "//"},
}

// menu order for the interactive prompt
var order = []string{"C++", "Python", "Java", "JavaScript", "Go", "Kotlin", "Rust"}

// All lists the registered languages in menu order.
func All() []Language {
	langs := make([]Language, 0, len(order))
	for _, name := range order {
		langs = append(langs, registry[name])
	}
	return langs
}

// Lookup returns the language registered under name.
func Lookup(name string) (Language, bool) {
	l, ok := registry[name]
	return l, ok
}
