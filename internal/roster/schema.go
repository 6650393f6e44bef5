package roster

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// SchemaErrors validates YAML roster bytes against the embedded CUE schema
// and returns every violation with its position in the file. A nil result
// means the document matches the schema.
//
// filename only labels positions in messages; nothing is read from disk.
func SchemaErrors(filename string, data []byte) []ValidationError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return []ValidationError{{
			Field:   "schema",
			Message: fmt.Sprintf("compiling roster schema: %v", err),
			Code:    ErrRosterSchema,
		}}
	}
	def := schema.LookupPath(cue.ParsePath("#Roster"))

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return []ValidationError{{
			Field:   "roster",
			Message: fmt.Sprintf("parsing YAML: %v", err),
			Code:    ErrRosterSchema,
		}}
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return cueViolations(err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return cueViolations(err)
	}
	return nil
}

// cueViolations converts a CUE error list into validation errors with field
// paths and line numbers.
func cueViolations(err error) []ValidationError {
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		v := ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: e.Error(),
			Code:    ErrRosterSchema,
		}
		if positions := cueerrors.Positions(e); len(positions) > 0 {
			v.Line = positions[0].Line()
		}
		out = append(out, v)
	}
	return out
}
