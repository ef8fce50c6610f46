package config

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema describes the shape of a resolved configuration. Unknown
// top-level keys are allowed.
const schema = `
#Severity: 0 | 1 | 2 | "off" | "warning" | "error"
#Setting:  #Severity | [#Severity, ...]

rules: [string]: #Setting
plugins?: [string]: string
quiet?:         bool
configBasedir?: string
ignoreFiles?:   string | [...string]
`

// Validate checks a resolved configuration against the schema.
func Validate(v Value) error {
	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid CUE schema: %w", err)
	}

	data, err := json.Marshal(v.Interface())
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	dataVal := ctx.CompileBytes(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile configuration: %w", err)
	}

	merged := schemaVal.Unify(dataVal)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return Errorf("Invalid configuration: %v", err)
	}
	return nil
}
