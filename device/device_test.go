package device_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qdsim/device"
	"github.com/katalvlaran/qdsim/dotsystem"
)

// tripleDotYAML mirrors the TripleDot preset literals in definition form.
const tripleDotYAML = `
name: tripledot
dots: 3
gates: 3
maxelectrons: 3
mu0: [-27, -20, -25]
eadd: [54, 52.8, 54]
w: [6, 1, 5]
alpha:
  - [1, 0.25, 0.1]
  - [0.25, 1, 0.25]
  - [0.1, 0.25, 1]
`

// TestDoubleDot_Literals pins the preset to its canonical parameters.
func TestDoubleDot_Literals(t *testing.T) {
	sys, err := device.DoubleDot()
	require.NoError(t, err)

	assert.Equal(t, "doubledot", sys.Name())
	assert.Equal(t, 2, sys.Dots())
	assert.Equal(t, 2, sys.Gates())
	assert.Equal(t, 3, sys.MaxElectrons())
	assert.Equal(t, 16, sys.StateCount())

	p := sys.Params()
	assert.Equal(t, []float64{120, 100}, p.Mu0)
	assert.Equal(t, []float64{54, 52.8}, p.EAdd)
	assert.Equal(t, []float64{6}, p.W)
	assert.True(t, mat.Equal(p.Alpha, mat.NewDense(2, 2, []float64{1, 0.25, 0.25, 1})))
}

// TestTripleDot_Literals pins the preset to its canonical parameters,
// W in pair order (0,1),(0,2),(1,2).
func TestTripleDot_Literals(t *testing.T) {
	sys, err := device.TripleDot()
	require.NoError(t, err)

	assert.Equal(t, "tripledot", sys.Name())
	assert.Equal(t, 3, sys.Dots())
	assert.Equal(t, 3, sys.Gates())
	assert.Equal(t, 64, sys.StateCount())

	p := sys.Params()
	assert.Equal(t, []float64{-27, -20, -25}, p.Mu0)
	assert.Equal(t, []float64{54, 52.8, 54}, p.EAdd)
	assert.Equal(t, []float64{6, 1, 5}, p.W)
	assert.True(t, mat.Equal(p.Alpha, mat.NewDense(3, 3, []float64{
		1, 0.25, 0.1,
		0.25, 1, 0.25,
		0.1, 0.25, 1,
	})))
}

// TestPresets_GroundStateAtZero checks the ground states the reference
// parameters imply at zero gate voltage: the double dot fills to [2 1],
// the triple dot stays empty.
func TestPresets_GroundStateAtZero(t *testing.T) {
	dd, err := device.DoubleDot()
	require.NoError(t, err)
	state, err := dd.GroundState([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, state)

	td, err := device.TripleDot()
	require.NoError(t, err)
	state, err = td.GroundState([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, state)
}

// TestBuiltin resolves both presets case-insensitively and rejects
// unknown names.
func TestBuiltin(t *testing.T) {
	for _, name := range device.Names() {
		sys, err := device.Builtin(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, sys.Name())
	}

	sys, err := device.Builtin("TripleDot")
	require.NoError(t, err)
	assert.Equal(t, "tripledot", sys.Name())

	_, err = device.Builtin("pentadot")
	assert.ErrorIs(t, err, device.ErrUnknownDevice)
	assert.Contains(t, err.Error(), "pentadot")
}

// TestLoad_RoundTrip decodes the triple-dot definition and verifies the
// built system matches the preset parameter for parameter.
func TestLoad_RoundTrip(t *testing.T) {
	def, err := device.Load(strings.NewReader(tripleDotYAML))
	require.NoError(t, err)

	built, err := def.Build()
	require.NoError(t, err)
	preset, err := device.TripleDot()
	require.NoError(t, err)

	assert.Equal(t, preset.Name(), built.Name())
	assert.Equal(t, preset.StateCount(), built.StateCount())

	bp, pp := built.Params(), preset.Params()
	assert.Equal(t, pp.Mu0, bp.Mu0)
	assert.Equal(t, pp.EAdd, bp.EAdd)
	assert.Equal(t, pp.W, bp.W)
	assert.True(t, mat.Equal(pp.Alpha, bp.Alpha))

	// Same model, same physics.
	want, err := preset.GroundState([]float64{10, -5, 3})
	require.NoError(t, err)
	got, err := built.GroundState([]float64{10, -5, 3})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestLoad_UnknownField verifies strict decoding: a typo in a definition
// file is an error, never a silent zero value.
func TestLoad_UnknownField(t *testing.T) {
	_, err := device.Load(strings.NewReader("dots: 2\ngattes: 2\n"))
	assert.ErrorIs(t, err, device.ErrDefinition)
}

// TestBuild_AlphaErrors covers the definition-level alpha validation.
func TestBuild_AlphaErrors(t *testing.T) {
	base := device.Definition{
		Dots:  2,
		Gates: 2,
		Mu0:   []float64{1, 2},
		EAdd:  []float64{1, 2},
		W:     []float64{1},
	}

	ragged := base
	ragged.Alpha = [][]float64{{1, 0.25}, {0.25}}
	_, err := ragged.Build()
	assert.ErrorIs(t, err, device.ErrDefinition)

	empty := base
	empty.Alpha = nil
	_, err = empty.Build()
	assert.ErrorIs(t, err, device.ErrDefinition)

	// Rectangular but wrong shape falls through to dotsystem.
	wrong := base
	wrong.Alpha = [][]float64{{1, 0.25, 0}, {0.25, 1, 0}}
	_, err = wrong.Build()
	assert.ErrorIs(t, err, dotsystem.ErrShape)
}

// TestBuild_MaxElectronsDefault checks that an omitted bound falls back
// to the dotsystem default and an explicit one is honored.
func TestBuild_MaxElectronsDefault(t *testing.T) {
	def, err := device.Load(strings.NewReader(`
dots: 2
gates: 2
mu0: [1, 2]
eadd: [3, 4]
w: [5]
alpha:
  - [1, 0]
  - [0, 1]
`))
	require.NoError(t, err)

	sys, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, dotsystem.DefaultMaxElectrons, sys.MaxElectrons())
	assert.Equal(t, dotsystem.DefaultName, sys.Name())

	def.MaxElectrons = 1
	small, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, small.MaxElectrons())
	assert.Equal(t, 4, small.StateCount())
}

// TestLoadFile exercises the file path, including the missing-file case.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripledot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tripleDotYAML), 0o644))

	def, err := device.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tripledot", def.Name)
	assert.Equal(t, 3, def.Dots)

	_, err = device.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, device.ErrDefinition)
}
