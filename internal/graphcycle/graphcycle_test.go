package graphcycle

import "testing"

func detect(edges map[string][]string, starts ...string) error {
	return Detect(Config[string]{
		Exists: func(k string) bool { _, ok := edges[k]; return ok },
		Next:   func(k string) []string { return edges[k] },
		Starts: starts,
	})
}

func TestDetectNoCycle(t *testing.T) {
	edges := map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": {},
	}
	if err := detect(edges, "a"); err != nil {
		t.Fatalf("acyclic graph reported error: %v", err)
	}
}

func TestDetectCycle(t *testing.T) {
	edges := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}
	err := detect(edges, "a")
	if err == nil {
		t.Fatal("cycle not reported")
	}
	if _, ok := err.(CycleError[string]); !ok {
		t.Fatalf("err = %T, want CycleError", err)
	}
}

func TestDetectSelfLoop(t *testing.T) {
	edges := map[string][]string{"a": {"a"}}
	if err := detect(edges, "a"); err == nil {
		t.Fatal("self loop not reported")
	}
}

func TestDetectDiamondIsNotCycle(t *testing.T) {
	edges := map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": {},
	}
	if err := detect(edges, "a"); err != nil {
		t.Fatalf("diamond reported error: %v", err)
	}
}

func TestDetectMissingNodesAreSkipped(t *testing.T) {
	edges := map[string][]string{"a": {"gone"}}
	if err := detect(edges, "a"); err != nil {
		t.Fatalf("dangling edge reported error: %v", err)
	}
}
