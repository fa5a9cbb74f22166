// Command schemacore validates a JSON instance document against a JSON
// Schema document and reports the resulting issues.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	schemacore "github.com/hollowpine/schemacore"
	"github.com/hollowpine/schemacore/jsonschema"
)

func main() {
	fs := flag.NewFlagSet("schemacore", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to the JSON Schema document")
	instancePath := fs.String("instance", "", "path to the JSON instance document")
	fs.Parse(os.Args[1:])

	if *schemaPath == "" || *instancePath == "" {
		fmt.Fprintln(os.Stderr, "usage: schemacore -schema schema.json -instance instance.json")
		os.Exit(2)
	}

	schemaBytes, err := os.ReadFile(*schemaPath)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	instanceBytes, err := os.ReadFile(*instancePath)
	if err != nil {
		fatalf("reading instance: %v", err)
	}

	root, err := jsonschema.ParseBytes(schemaBytes)
	if err != nil {
		fatalf("parsing schema: %v", err)
	}

	issues, err := schemacore.ValidateJSON(context.Background(), root, instanceBytes, schemacore.ParseOpt{})
	if err != nil {
		fatalf("parsing instance: %v", err)
	}
	if len(issues) == 0 {
		fmt.Println("valid")
		return
	}
	for _, iss := range issues {
		fmt.Printf("%s: %s (%s)\n", iss.Path, iss.Message, iss.Code)
	}
	os.Exit(1)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
