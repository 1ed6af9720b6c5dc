package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/boundint/internal/canonical"
)

// TraceSnapshot is the golden-file form of a run.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
}

// toCanonicalMap converts the snapshot into the plain values canonical
// JSON accepts.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"seq":  event.Seq,
			"op":   event.Op,
			"args": event.Args,
		}
		optional := map[string]string{
			"policy":    event.Policy,
			"to":        event.Target,
			"value":     event.Value,
			"remainder": event.Remainder,
			"domain":    event.Domain,
			"width":     event.Width,
			"error":     event.Error,
		}
		for k, v := range optional {
			if v != "" {
				eventMap[k] = v
			}
		}
		if event.Exact != nil {
			eventMap["exact"] = *event.Exact
		}
		traceList[i] = eventMap
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
	}
}

// traceDigestTag separates trace digests from other canonical hashes.
const traceDigestTag = "boundint/trace/v1"

// TraceDigest identifies a run by the content of its trace. Two runs with
// byte-identical golden files have equal digests.
func TraceDigest(name string, result *Result) (string, error) {
	snapshot := TraceSnapshot{ScenarioName: name, Trace: result.Trace}
	return canonical.Digest(traceDigestTag, snapshot.toCanonicalMap())
}

// MarshalTrace returns the canonical JSON of a run's trace.
func MarshalTrace(name string, result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{ScenarioName: name, Trace: result.Trace}
	return canonical.Marshal(snapshot.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	traceJSON, err := MarshalTrace(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)
	return nil
}
