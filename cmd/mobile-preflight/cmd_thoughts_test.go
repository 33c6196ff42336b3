package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/mobile-preflight/pkg/thought"
)

func TestValidateTraces_ReportsViolations(t *testing.T) {
	broken := thought.Trace{
		Name: "broken",
		Thoughts: []thought.Thought{
			{Thought: "a", ThoughtNumber: 1, TotalThoughts: 2, NextThoughtNeeded: false},
			{Thought: "b", ThoughtNumber: 3, TotalThoughts: 2, BranchID: "ghost"},
		},
	}
	var buf bytes.Buffer

	err := validateTraces(&buf, []thought.Trace{broken})

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "[FAIL] broken")
	assert.Contains(t, out, "expected thoughtNumber 2")
	assert.Contains(t, out, "never opened")
}
