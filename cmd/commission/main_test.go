package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Fixture(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(filepath.Join("..", "..", "testdata", "input.json"), &out))

	want, err := os.ReadFile(filepath.Join("..", "..", "testdata", "expected_output.txt"))
	require.NoError(t, err)
	assert.Equal(t, string(want), out.String())
}

func TestRun_FailuresPrintNothing(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.json")},
		{"malformed document", filepath.Join("..", "..", "testdata", "malformed.json")},
		{"unsupported type", filepath.Join("..", "..", "testdata", "invalid_type.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(tt.path, &out))
			assert.Empty(t, out.String())
		})
	}
}
