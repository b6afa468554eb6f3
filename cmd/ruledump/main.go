// Command ruledump compiles a rule graph file and prints its canonical
// textual form. Useful for diffing rule sets and for reviewing what a
// visually edited graph actually does.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deckforge/engine-go/internal/game/rules"
)

func main() {
	graphPath := flag.String("graph", "", "path to rule graph file (YAML or JSON)")
	flag.Parse()

	if *graphPath == "" {
		log.Fatal("no rule graph given, use -graph")
	}

	data, err := os.ReadFile(*graphPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *graphPath, err)
	}

	var graph rules.RuleGraph
	if err := yaml.Unmarshal(data, &graph); err != nil {
		log.Fatalf("parsing %s: %v", *graphPath, err)
	}

	// Compile first so bad conditions and malformed triggers fail loudly;
	// skipped action nodes show up as comments in the export itself.
	if _, err := rules.Compile(graph, nil); err != nil {
		log.Fatalf("compiling %s: %v", *graphPath, err)
	}

	code, err := rules.ExportCode(graph)
	if err != nil {
		log.Fatalf("exporting %s: %v", *graphPath, err)
	}

	fmt.Print(code)
}
