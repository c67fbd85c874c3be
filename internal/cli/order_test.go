package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const triangleJSON = `{"edges": [
  {"from": "a", "to": "b", "weight": 1},
  {"from": "b", "to": "c", "weight": 1},
  {"from": "c", "to": "a", "weight": 2}
]}`

func TestRunOrder(t *testing.T) {
	input := writeInput(t, "graph.json", triangleJSON)
	output := filepath.Join(t.TempDir(), "order.json")

	err := runOrder(context.Background(), input, &orderOpts{output: output, seed: 0})
	if err != nil {
		t.Fatalf("runOrder() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		Order          []string `json:"order"`
		FeedbackWeight int64    `json:"feedback_weight"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !slices.Equal(res.Order, []string{"c", "a", "b"}) {
		t.Errorf("order = %v, want [c a b]", res.Order)
	}
	if res.FeedbackWeight != 1 {
		t.Errorf("feedback_weight = %d, want 1", res.FeedbackWeight)
	}
}

func TestRunOrder_MissingInput(t *testing.T) {
	err := runOrder(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &orderOpts{})
	if err == nil {
		t.Fatal("runOrder() should fail for missing input")
	}
}

func TestRunRender_DOT(t *testing.T) {
	input := writeInput(t, "graph.json", triangleJSON)
	output := filepath.Join(t.TempDir(), "graph.dot")

	err := runRender(context.Background(), input, &renderOpts{output: output, format: formatDOT})
	if err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph") {
		t.Errorf("output is not DOT:\n%s", dot)
	}
	if !strings.Contains(dot, `"b" -> "c" [color=red, style=dashed, constraint=false];`) {
		t.Errorf("feedback edge not highlighted:\n%s", dot)
	}
}

func TestRunRender_TOMLInput(t *testing.T) {
	input := writeInput(t, "graph.toml", `
[[edges]]
from = "a"
to = "b"

[[edges]]
from = "b"
to = "a"
weight = 2
`)
	output := filepath.Join(t.TempDir(), "graph.dot")

	err := runRender(context.Background(), input, &renderOpts{output: output, format: formatDOT})
	if err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"a" -> "b" [color=red, style=dashed, constraint=false];`) {
		t.Errorf("lighter direction should point backward:\n%s", data)
	}
}
