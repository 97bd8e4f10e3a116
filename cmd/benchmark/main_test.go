package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/counting/internal/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTests(t *testing.T) {
	// Arrange
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "a.yaml"), []byte("problems:\n  - kind: permutations\n    n: 5\n    r: 3\n  - kind: combinations\n    n: 5\n    r: 3\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(directory, "b.json"), []byte(`{"name": "hands", "kind": "combinations", "n": 52, "r": 5}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(directory, "notes.txt"), []byte("ignored"), 0644))

	// Act
	tests, err := getTests(directory)

	// Assert
	require.NoError(t, err)
	require.Len(t, tests, 3)
	assert.Equal(t, problem.Permutations, tests[0].Problem.Kind)
	assert.Equal(t, problem.Combinations, tests[1].Problem.Kind)
	assert.Equal(t, "hands", tests[2].Problem.Name)
	assert.Equal(t, filepath.Join(directory, "b.json"), tests[2].File)
}

func TestMeasure(t *testing.T) {
	result := measure(TestMetadata{Problem: problem.Problem{Kind: problem.Combinations, N: 100, R: 50}}, 3)
	require.NoError(t, result.Err)
	assert.Equal(t, 30, result.Digits) // C(100,50) = 100891344545564193334812497256

	result = measure(TestMetadata{Problem: problem.Problem{Kind: "teleport"}}, 3)
	assert.Error(t, result.Err)
}

func TestToCsv(t *testing.T) {
	var buffer bytes.Buffer
	results := []BenchmarkResult{
		{Test: TestMetadata{File: "a.yaml", Problem: problem.Problem{Kind: problem.Permutations}}, Digits: 2},
		{Test: TestMetadata{File: "b.json", Problem: problem.Problem{Name: "broken", Kind: problem.Exacts}}, Err: errors.New("boom")},
	}

	require.NoError(t, toCsv(&buffer, results))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"File", "Problem", "Kind", "Duration(us)", "Digits", "Error"},
		{"a.yaml", "permutations", "permutations", "0", "2", ""},
		{"b.json", "broken", "exacts", "0", "0", "boom"},
	}, records)
}
