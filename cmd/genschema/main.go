// Package main generates charthub.schema.json from the config types, for
// editor completion of config.yaml.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/kanzi/charthub/internal/config"
)

const (
	schemaID    = "https://raw.githubusercontent.com/kanzi/charthub/main/charthub.schema.json"
	schemaDraft = "http://json-schema.org/draft-07/schema#"
	outputPath  = "charthub.schema.json"
)

func main() {
	out := outputPath
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	data, err := generate()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Fatalf("Write %s: %v", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
}

// generate reflects config.Config into a draft-07 schema document
func generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
		BaseSchemaID:              jsonschema.ID(schemaID),
		LookupComment:             fieldComment,
	}

	schema := r.Reflect(&config.Config{})
	if schema == nil {
		return nil, fmt.Errorf("reflect returned nil schema")
	}

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	doc["$schema"] = schemaDraft
	doc["$id"] = schemaID
	doc["title"] = "charthub configuration"
	doc["description"] = "Settings for charthub: the Artifact Hub endpoint, the helm binary and search defaults"

	// draft-07 names the section "definitions"
	if defs, ok := doc["$defs"]; ok {
		doc["definitions"] = defs
		delete(doc, "$defs")
	}

	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return []byte(strings.ReplaceAll(string(data), "#/$defs/", "#/definitions/")), nil
}

// fieldComment reads the "comment" tag that also feeds config.yaml comments
func fieldComment(t reflect.Type, fieldName string) string {
	if fieldName == "" {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	if f, ok := t.FieldByName(fieldName); ok {
		return f.Tag.Get("comment")
	}
	return ""
}
