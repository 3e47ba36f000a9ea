// Package harness runs conformance scenarios against loaded works.
//
// A scenario names a work and lists queries, lookups and event checks with
// their expected outcomes. The harness loads the work, executes every step,
// records what the Model returned, and reports each mismatch.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	work: ../works/quartet.yaml      # relative to the scenario file
//	queries:
//	  - from: 0
//	    to: 1/2
//	    performer: anna
//	    kinds: [pitch]               # omit for every kind, [] for none
//	    expect: [1, 2, 6]
//	lookups:
//	  - id: 7
//	    kind: lyric
//	    value: la
//	    context: "[1/2, 1] cara/voice/v1"
//	  - id: 99
//	    found: false
//	events:
//	  - id: 100
//	    members: [1, 2, 3]
//	assertions:
//	  - type: entity_count
//	    count: 8
//	  - type: kinds
//	    kinds: [pitch, rest]
//	  - type: meter
//	    meter: "4/4 x2"
//
// Unknown fields are rejected so that a typo cannot silently disable a check.
//
// # Assertion Types
//
//   - entity_count: Model.Len equals count
//   - kinds: Model.Kinds equals kinds, in order
//   - meter: the meter structure renders as meter ("none" when absent)
//
// # Golden Traces
//
// Every step appends a TraceEvent describing its input and what the Model
// returned. RunWithGolden compares that trace with
// testdata/golden/{scenario.Name}.golden.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/quartet.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(ctx, scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
