package store

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/qdsim/grid"
)

// occupationJSON is the stored form of an occupation grid: dimensions
// plus the flat cell data in the grid's own row-major order.
type occupationJSON struct {
	NX   int   `json:"nx"`
	NY   int   `json:"ny"`
	Dots int   `json:"dots"`
	Data []int `json:"data"`
}

// scalarJSON is the stored form of a scalar grid.
type scalarJSON struct {
	NX   int       `json:"nx"`
	NY   int       `json:"ny"`
	Data []float64 `json:"data"`
}

func encodeOccupations(og *grid.OccupationGrid) (string, error) {
	nx, ny, dots := og.Dims()
	payload := occupationJSON{NX: nx, NY: ny, Dots: dots, Data: make([]int, 0, nx*ny*dots)}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			payload.Data = append(payload.Data, og.At(x, y)...)
		}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("store: encode occupations: %w", err)
	}

	return string(b), nil
}

func decodeOccupations(s string) (*grid.OccupationGrid, error) {
	var payload occupationJSON
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, fmt.Errorf("store: decode occupations: %w", err)
	}
	og, err := grid.NewOccupationGrid(payload.NX, payload.NY, payload.Dots)
	if err != nil {
		return nil, err
	}
	if want := payload.NX * payload.NY * payload.Dots; len(payload.Data) != want {
		return nil, fmt.Errorf("store: occupations carry %d values, want %d", len(payload.Data), want)
	}
	i := 0
	for x := 0; x < payload.NX; x++ {
		for y := 0; y < payload.NY; y++ {
			og.Set(x, y, payload.Data[i:i+payload.Dots])
			i += payload.Dots
		}
	}

	return og, nil
}

// encodeScalar stores nil grids as the empty string, so a run swept
// without detection round-trips to nil maps.
func encodeScalar(sg *grid.ScalarGrid) (string, error) {
	if sg == nil {
		return "", nil
	}
	nx, ny := sg.Dims()
	payload := scalarJSON{NX: nx, NY: ny, Data: make([]float64, 0, nx*ny)}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			payload.Data = append(payload.Data, sg.At(x, y))
		}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("store: encode scalar grid: %w", err)
	}

	return string(b), nil
}

func decodeScalar(s string) (*grid.ScalarGrid, error) {
	if s == "" {
		return nil, nil
	}
	var payload scalarJSON
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, fmt.Errorf("store: decode scalar grid: %w", err)
	}
	sg, err := grid.NewScalarGrid(payload.NX, payload.NY)
	if err != nil {
		return nil, err
	}
	if want := payload.NX * payload.NY; len(payload.Data) != want {
		return nil, fmt.Errorf("store: scalar grid carries %d values, want %d", len(payload.Data), want)
	}
	i := 0
	for x := 0; x < payload.NX; x++ {
		for y := 0; y < payload.NY; y++ {
			sg.Set(x, y, payload.Data[i])
			i++
		}
	}

	return sg, nil
}
