package device

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qdsim/dotsystem"
)

// Definition is the on-disk YAML form of a device: the same parameters
// the presets carry as literals, plus the dimensions they imply. See
// Build for how the fields map onto a System.
type Definition struct {
	// Name labels the resulting system. Optional.
	Name string `yaml:"name"`

	// Dots and Gates declare the model dimensions.
	Dots  int `yaml:"dots"`
	Gates int `yaml:"gates"`

	// MaxElectrons bounds per-dot occupancy. Zero or omitted selects
	// the dotsystem default.
	MaxElectrons int `yaml:"maxelectrons"`

	// Mu0, EAdd and W are the energy parameters; W in canonical pair
	// order (0,1),(0,2),...,(1,2),...
	Mu0  []float64 `yaml:"mu0"`
	EAdd []float64 `yaml:"eadd"`
	W    []float64 `yaml:"w"`

	// Alpha is the dots×gates coupling matrix, one row per dot.
	Alpha [][]float64 `yaml:"alpha"`
}

// Load decodes a device definition from r. Decoding is strict: unknown
// fields are rejected, so a typo in a definition file fails loudly
// instead of silently falling back to a zero value.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Definition
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrDefinition, err)
	}

	return &d, nil
}

// LoadFile reads and decodes the definition at path.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefinition, err)
	}
	defer f.Close()

	return Load(f)
}

// Build constructs the System the definition describes. Alpha rows must
// all have the same length (ErrDefinition); every other shape problem
// surfaces from dotsystem.New with its usual sentinels.
func (d *Definition) Build() (*dotsystem.System, error) {
	alpha, err := d.alphaDense()
	if err != nil {
		return nil, err
	}

	p := dotsystem.Params{
		Mu0:   d.Mu0,
		EAdd:  d.EAdd,
		W:     d.W,
		Alpha: alpha,
	}
	opts := []dotsystem.Option{dotsystem.WithName(d.Name)}
	if d.MaxElectrons != 0 {
		opts = append(opts, dotsystem.WithMaxElectrons(d.MaxElectrons))
	}

	return dotsystem.New(d.Dots, d.Gates, p, opts...)
}

// alphaDense converts the YAML row slices into a dense matrix, rejecting
// ragged input.
func (d *Definition) alphaDense() (*mat.Dense, error) {
	rows := len(d.Alpha)
	if rows == 0 {
		return nil, fmt.Errorf("%w: alpha is empty", ErrDefinition)
	}
	cols := len(d.Alpha[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: alpha row 0 is empty", ErrDefinition)
	}
	backing := make([]float64, 0, rows*cols)
	for i, row := range d.Alpha {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: alpha row %d has %d entries, row 0 has %d",
				ErrDefinition, i, len(row), cols)
		}
		backing = append(backing, row...)
	}

	return mat.NewDense(rows, cols, backing), nil
}
