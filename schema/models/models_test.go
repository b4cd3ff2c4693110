package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMSMRHalfCellModel(t *testing.T) {
	t.Parallel()

	m := NewMSMRHalfCellModel("negative")
	cfg := m.Config()
	require.Equal(t, "MSMRHalfCellModel", cfg["type"])
	require.Equal(t, "negative", cfg["electrode"])
	_, hasOptions := cfg["options"]
	require.False(t, hasOptions)

	m.Options = map[string]any{"species format": "Xj", "particle phases": "2"}
	require.Equal(t, map[string]any{
		"species format":  "Xj",
		"particle phases": "2",
	}, m.Config()["options"])
}

func TestMSMRFullCellModel(t *testing.T) {
	t.Parallel()

	m := NewMSMRFullCellModel(
		NewMSMRHalfCellModel("negative"),
		NewMSMRHalfCellModel("positive"),
	)
	cfg := m.Config()
	require.Equal(t, "MSMRFullCellModel", cfg["type"])

	neg, ok := cfg["negative_electrode_model"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "negative", neg["electrode"])
	pos, ok := cfg["positive_electrode_model"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "positive", pos["electrode"])
}
