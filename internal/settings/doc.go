// Package settings loads, validates, and transforms the canonical MCP
// settings document that vibe deploys to every target.
//
// # Data Model
//
// A [Document] holds a map of named [ServerEntry] values under the
// "mcpServers" key. Every field of a server entry is optional; absent fields
// stay absent through the whole pipeline and are never emitted as null or
// empty values.
//
// # Unknown Field Preservation
//
// Both [Document] and [ServerEntry] preserve JSON fields they do not model.
// Unknown top-level keys and extra fields within a server entry survive the
// load/expand/serialize round trip byte-for-byte (modulo env expansion of
// their strings), so the deployed files never lose data the assistants may
// rely on.
//
// # Validation
//
// [Load] validates the parsed document against an embedded JSON Schema
// (schema-as-data, evaluated with santhosh-tekuri/jsonschema). Violations are
// reported with their instance locations via the [ErrValidation] sentinel.
//
// # Immutability
//
// The loaded document is never mutated in place. [Document.Expand] and
// [Document.WithServers] return new documents; deploy-all shares one expanded
// snapshot across concurrent per-target pipelines without locking.
package settings
