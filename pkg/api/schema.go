package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schema/task.json
	taskSchemaJSON string
	//go:embed schema/tasks.json
	tasksSchemaJSON string
)

const schemaBase = "https://tableflip.dev/weekly/schema/"

var taskSchema, tasksSchema = compileSchemas()

func compileSchemas() (*jsonschema.Schema, *jsonschema.Schema) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(schemaBase+"task.json", strings.NewReader(taskSchemaJSON)); err != nil {
		panic(err)
	}
	if err := c.AddResource(schemaBase+"tasks.json", strings.NewReader(tasksSchemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile(schemaBase + "task.json"), c.MustCompile(schemaBase + "tasks.json")
}

// decodeValidated checks body against schema and then decodes it into out.
func decodeValidated(body []byte, schema *jsonschema.Schema, out interface{}) error {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
