// Package config resolves the simulator settings.
//
// The config package handles:
//   - Built-in defaults (collision detection on, warn logging, text format, color)
//   - Loading an optional YAML settings file
//   - Overriding settings from MARSROVER_* environment variables
//   - Validation of the final settings
//
// Settings File:
//
//	debug: false
//	collisions: true
//	color: true
//	log:
//	  level: warn   # debug, info, warn or error
//	  format: text  # text or json
//
// Keys missing from the file keep their defaults. Unknown keys are rejected.
//
// Usage:
//
//	settings, err := config.Load("marsrover.yml")
//	if err != nil {
//		return err
//	}
//	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
//		return err
//	}
//
// Command-line flags are applied on top by the caller, after ApplyEnv.
package config
