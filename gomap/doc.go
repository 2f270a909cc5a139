// Package gomap projects config trees to and from plain Go values,
// YAML, and JSON.  Block key order survives the YAML projection via
// ordered maps; JSON object order follows the same sequence.
package gomap
