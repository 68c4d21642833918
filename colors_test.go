package yso_test

import (
	"testing"

	"github.com/KimNorgaard/go-yso"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestNewColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	doc, err := yso.ParseString(scenario)
	require.NoError(t, err)

	out, err := yso.Marshal(doc, yso.WithColors(yso.NewColors()))
	require.NoError(t, err)
	require.Contains(t, string(out), "\x1b[38;2;128;216;236mname\x1b[")
	require.Contains(t, string(out), "\x1b[38;2;255;0;196m[Pet]\x1b[")

	plain, err := yso.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, scenario, string(plain))
}
