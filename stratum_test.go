package stratum_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratumsim/stratum"
)

const testDeck = `
title: facade test
phases: [water, oil]
grid:
  nx: 1
  ny: 1
  nz: 10
pressure:
  kind: uniform
  value: 20000000.0
wells:
  - name: W1
    type: producer
    cells: [0]
    controls:
      - kind: bhp
        target: 15000000.0
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndInit(t *testing.T) {
	model, err := stratum.Load(writeDeck(t, testDeck))
	require.NoError(t, err)
	assert.Equal(t, []string{"water", "oil"}, model.PhaseNames)

	ws, err := model.InitialState()
	require.NoError(t, err)
	require.Len(t, ws.Bhp, 1)
	assert.Equal(t, 15000000.0, ws.Bhp[0])

	cols, err := model.Columns()
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, cols[0])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := stratum.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidDeck(t *testing.T) {
	path := writeDeck(t, "phases: []\n")
	_, err := stratum.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid deck")
}
