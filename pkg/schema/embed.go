package schema

import _ "embed"

// metaSchemaJSON describes the declarative schema document format itself.
// Codec entry points validate incoming documents against it before decoding.
//
//go:embed metaschema.json
var metaSchemaJSON []byte
