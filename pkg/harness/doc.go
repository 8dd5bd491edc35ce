// Package harness runs self-test scenarios against a configuration.
//
// A Scenario names a file path, an optional source snippet and what the
// configuration should do with it: whether the path is ignored, which rules
// are in effect at which severity, and whether an analysis engine should
// accept the snippet. Configuration-level expectations are checked with the
// resolver alone; snippet expectations need an Engine.
//
// Scenarios come from BuiltinSuites or from YAML files (LoadScenarios).
// Runner executes them concurrently and collects a Report.
package harness
