package catalogue

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// document mirrors the minimum shape of a catalogue file for schema
// generation. Additional top-level fields stay allowed on purpose: real
// catalogue files carry site metadata alongside the entry array.
type document struct {
	Insults []Entry `json:"insults"`
}

// DocumentSchema returns the JSON Schema of a catalogue document as a plain
// map, ready to be marshalled or embedded.
func DocumentSchema() (map[string]interface{}, error) {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(document{})
	return schemaToMap(schema)
}

func schemaToMap(schema *jsonschema.Schema) (map[string]interface{}, error) {
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("schemaToMap: marshal: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("schemaToMap: unmarshal: %w", err)
	}
	return m, nil
}
