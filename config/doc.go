// Package config loads context-window overrides from configuration files.
//
// The registry's built-in table covers commonly supported models, but
// provider limits change faster than releases ship. An overrides file lets
// a deployment patch window sizes without a rebuild:
//
//	# windows.yaml
//	context_windows:
//	  gpt-4-turbo-2024-04-09: 128000
//	  internal-finetune: 32768
//	default_window: 16384
//	reserved_for_response: 2000
//
// YAML, TOML, and JSON formats are supported, dispatched on file
// extension:
//
//	o, err := config.Load("windows.yaml")
//	window := o.Window("internal-finetune") // 32768, registry fallback otherwise
//
// config.Watch reloads the file on change and delivers immutable snapshots
// over a channel; config.Schema exposes a JSON Schema for validating
// override files in editors and CI.
//
// This package is the only part of the module that touches the filesystem.
// The core counting, budgeting, and truncation paths stay I/O-free.
package config
