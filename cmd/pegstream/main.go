// Command pegstream runs one of the worked-example grammars against
// stdin or a literal argument, the way clarete-langlang/cmd/main.go
// drives its grammar compiler from flags.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wrenfold/pegstream"
	examplehello "github.com/wrenfold/pegstream/examples/hello"
	examplejson "github.com/wrenfold/pegstream/examples/json"
)

func main() {
	var (
		grammar = flag.String("grammar", "hello", "Which worked example to parse with (hello, json)")
		input   = flag.String("input", "", "Input text to parse; reads stdin if empty")
		trace   bool
	)
	flag.BoolVar(&trace, "trace", false, "Enable rule-level trace logging")
	flag.Parse()

	pegstream.SetTracing(trace)

	text := *input
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("can't read stdin: %s", err)
		}
		text = string(data)
	}

	value, err := parse(*grammar, text)
	if err != nil {
		log.Fatalf("parse failed: %s", err)
	}

	out, err := json.Marshal(value)
	if err != nil {
		log.Fatalf("can't encode result: %s", err)
	}
	fmt.Println(string(out))
}

func parse(grammar, text string) (any, error) {
	switch grammar {
	case "hello":
		return examplehello.New().Parse("greeting", text)
	case "json":
		return examplejson.Parse(text)
	default:
		return nil, fmt.Errorf("unknown grammar %q (want hello or json)", grammar)
	}
}
