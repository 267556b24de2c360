package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratumsim/stratum/pkg/deck"
	"github.com/stratumsim/stratum/pkg/state"
	"github.com/stratumsim/stratum/pkg/wells"
)

const sampleDeck = `
title: smoke test
phases: [water, oil]
grid:
  nx: 4
  ny: 4
  nz: 10
  inactive: [5]
pressure:
  kind: gradient
  value: 20000000.0
  step: 100000.0
wells:
  - name: INJ1
    type: injector
    cells: [0, 16]
    controls:
      - kind: surface_rate
        target: 100
        distribution: [0.3, 0.7]
      - kind: bhp
        target: 25000000.0
  - name: PROD1
    type: producer
    stopped: true
    cells: [159]
    controls:
      - kind: bhp
        target: 5000
`

func TestParseAndBuild(t *testing.T) {
	d, err := deck.Parse([]byte(sampleDeck))
	require.NoError(t, err)
	assert.Equal(t, "smoke test", d.Title)
	assert.Equal(t, []string{"water", "oil"}, d.Phases)
	assert.Equal(t, deck.PressGradient, d.Pressure.Kind)

	fleet, g, press, err := d.Build()
	require.NoError(t, err)

	require.Len(t, fleet.Wells, 2)
	assert.Equal(t, 2, fleet.Phases)
	assert.Equal(t, wells.Injector, fleet.Wells[0].Type)
	assert.True(t, fleet.Wells[1].Stopped)
	assert.Equal(t, wells.SurfaceRate, fleet.Wells[0].CurrentControl().Kind)

	nx, ny, nz := g.Dims()
	assert.Equal(t, [3]int{4, 4, 10}, [3]int{nx, ny, nz})
	assert.False(t, g.Active(5))

	// Gradient field: value at k=0, value + 9*step at the deepest layer.
	assert.InDelta(t, 20000000.0, press.Pressure(0), 1e-6)
	assert.InDelta(t, 20000000.0+9*100000.0, press.Pressure(159), 1e-6)
}

func TestBuild_RoundTripToInit(t *testing.T) {
	d, err := deck.Parse([]byte(sampleDeck))
	require.NoError(t, err)
	fleet, _, press, err := d.Build()
	require.NoError(t, err)

	ws, err := state.Init(fleet, press)
	require.NoError(t, err)

	assert.InDelta(t, 30, ws.Rates(0)[0], 1e-9)
	assert.InDelta(t, 70, ws.Rates(0)[1], 1e-9)
	assert.Equal(t, 5000.0, ws.Bhp[1])
}

func TestParse_Invalid(t *testing.T) {
	_, err := deck.Parse([]byte("wells: {not: [valid"))
	require.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	bad := `
phases: []
grid:
  nx: 0
  ny: 4
  nz: 10
pressure:
  kind: sideways
wells:
  - name: ""
    type: syphon
    cells: []
    controls: []
`
	d, err := deck.Parse([]byte(bad))
	require.NoError(t, err)

	err = d.Validate()
	require.Error(t, err)

	errs := deck.ValidationErrors(err)
	require.NotEmpty(t, errs)
	// phases, grid extents, pressure kind, well name, type, cells, controls.
	assert.Len(t, errs, 7)

	verr, ok := errs[0].(*deck.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "phases", verr.Field)
}

func TestValidate_PressureCellsLength(t *testing.T) {
	d := &deck.Deck{
		Phases:   []string{"water"},
		Grid:     deck.GridSpec{NX: 1, NY: 1, NZ: 3},
		Pressure: deck.PressSpec{Kind: deck.PressCells, Cells: []float64{1, 2}},
	}
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need 3 entries")
}

func TestBuild_UniformPressure(t *testing.T) {
	d := &deck.Deck{
		Phases:   []string{"water"},
		Grid:     deck.GridSpec{NX: 2, NY: 2, NZ: 2},
		Pressure: deck.PressSpec{Kind: deck.PressUniform, Value: 42},
	}
	_, _, press, err := d.Build()
	require.NoError(t, err)
	for c := 0; c < 8; c++ {
		assert.Equal(t, 42.0, press.Pressure(c))
	}
}
