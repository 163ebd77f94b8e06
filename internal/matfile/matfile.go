// Package matfile reads and writes matrices and vectors as YAML documents.
package matfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/calibmat/mat"
)

var (
	ErrColumnCount    = errors.New("matrix must have 3 columns")
	ErrComponentCount = errors.New("vector must have 3 components")
)

// Document is a matrix given by its columns and an optional vector.
type Document struct {
	Columns [][]float32 `yaml:"columns"`
	Vector  []float32   `yaml:"vector,omitempty"`
}

func NewDocument(m mat.Mat3) *Document {
	d := &Document{}
	for c := 0; c < 3; c++ {
		a := m.Col(c).Array()
		d.Columns = append(d.Columns, a[:])
	}
	return d
}

func (d *Document) SetVector(v mat.Vec3) {
	a := v.Array()
	d.Vector = a[:]
}

func vec3(f []float32) (mat.Vec3, error) {
	if len(f) != 3 {
		return mat.Vec3{}, fmt.Errorf("%w, got %d", ErrComponentCount, len(f))
	}
	return mat.NewVec3(f[0], f[1], f[2]), nil
}

// Matrix returns the matrix described by the columns of the document.
func (d *Document) Matrix() (mat.Mat3, error) {
	if len(d.Columns) != 3 {
		return mat.Mat3{}, fmt.Errorf("%w, got %d", ErrColumnCount, len(d.Columns))
	}
	var m mat.Mat3
	for c, col := range d.Columns {
		v, err := vec3(col)
		if err != nil {
			return mat.Mat3{}, fmt.Errorf("column %d: %w", c+1, err)
		}
		m.SetCol(c, v)
	}
	return m, nil
}

// Vector3 returns the vector of the document and whether one is present.
func (d *Document) Vector3() (mat.Vec3, bool, error) {
	if d.Vector == nil {
		return mat.Vec3{}, false, nil
	}
	v, err := vec3(d.Vector)
	if err != nil {
		return mat.Vec3{}, false, fmt.Errorf("vector: %w", err)
	}
	return v, true, nil
}

func Decode(r io.Reader) (*Document, error) {
	d := &Document{}
	if err := yaml.NewDecoder(r).Decode(d); err != nil {
		return nil, err
	}
	return d, nil
}

func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
