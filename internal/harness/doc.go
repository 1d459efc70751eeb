// Package harness runs end-to-end scoring scenarios described in YAML.
//
// A scenario fixes the clock, loads a CUE profile, logs a sequence of
// activities into a throwaway journal, and derives every engine view
// from the result. Expected values live in the scenario file; full
// snapshots are compared against golden files with goldie.
//
// Scenarios double as executable documentation: each file states the
// behavior it locks in, and the golden file shows the exact derived
// output.
package harness
