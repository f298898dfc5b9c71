// Package config loads generation profiles.
//
// A profile is an HCL file with three optional blocks:
//
//	topology {
//	  components     = 3
//	  component_size = 10
//	  gate_size      = 4
//	}
//	layout {
//	  updates   = 50
//	  repulsion = 1
//	  rate      = 0.05
//	  theta     = 0.2
//	}
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//
// Attributes left out keep their Default() value. Expressions can read the
// environment through the env object, e.g. gate_size = env.CLIQUEGATE_GATE.
// Command-line flags are applied on top of a loaded profile by package cli.
package config
