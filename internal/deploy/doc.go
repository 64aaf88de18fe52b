// Package deploy implements the configuration deployment pipeline: one
// canonical MCP settings document fanned out to the native config file of
// each supported AI coding assistant.
//
// # Pipeline
//
// A single-target deployment runs load → expand → filter → encode → write:
//
//  1. Resolve the target from the static table ([ErrUnknownTarget] otherwise)
//  2. Load and validate the settings document (settings package)
//  3. Expand environment variable references across the whole document
//  4. Filter out servers the target provides natively ([FilterServers])
//  5. Ensure the parent directory exists
//  6. Encode in the target's native format ([EncodeJSON] or [EncodeCodexTOML])
//  7. Back up any existing file, then atomically replace it
//
// Failures abort the target's deployment with no partial write and no retry.
//
// # Encoding Strategy
//
// Each [Target] carries its [Encoder] as a value, so the pipeline never
// branches on target identity; adding a target means adding a table row.
//
// # Deploy All
//
// [Pipeline.DeployAll] loads and expands once, then runs the per-target tail
// of the pipeline concurrently over the immutable snapshot. The four targets
// write to disjoint paths, so no locking is involved, and one target's
// failure neither blocks nor rolls back the others.
package deploy
