// Package console implements a line based interpreter for the vector and
// matrix operations.
//
// Arguments are float32 values. Vectors take three arguments, matrices take
// nine in column-major order.
package console

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/seqsense/calibmat/mat"
)

var (
	ErrArgumentNumber = errors.New("invalid number of arguments")
	ErrInvalidCommand = errors.New("invalid command")
)

func vectors(args []float32, n int) ([]mat.Vec3, error) {
	if len(args) != 3*n {
		return nil, ErrArgumentNumber
	}
	vs := make([]mat.Vec3, n)
	for i := range vs {
		vs[i] = mat.NewVec3(args[3*i], args[3*i+1], args[3*i+2])
	}
	return vs, nil
}

func matrix(args []float32) (mat.Mat3, error) {
	if len(args) != 9 {
		return mat.Mat3{}, ErrArgumentNumber
	}
	var e [9]float32
	copy(e[:], args)
	return mat.Mat3FromElems(e), nil
}

func vecRow(v mat.Vec3) []float32 {
	a := v.Array()
	return a[:]
}

// matRows returns the matrix row by row.
func matRows(m mat.Mat3) [][]float32 {
	return [][]float32{
		vecRow(m.Row(0)),
		vecRow(m.Row(1)),
		vecRow(m.Row(2)),
	}
}

var commands = map[string]func(args []float32) ([][]float32, error){
	"dot": func(args []float32) ([][]float32, error) {
		vs, err := vectors(args, 2)
		if err != nil {
			return nil, err
		}
		return [][]float32{{vs[0].Dot(vs[1])}}, nil
	},
	"add": func(args []float32) ([][]float32, error) {
		vs, err := vectors(args, 2)
		if err != nil {
			return nil, err
		}
		return [][]float32{vecRow(vs[0].Add(vs[1]))}, nil
	},
	"scale": func(args []float32) ([][]float32, error) {
		if len(args) != 4 {
			return nil, ErrArgumentNumber
		}
		v := mat.NewVec3(args[0], args[1], args[2])
		return [][]float32{vecRow(v.Mul(args[3]))}, nil
	},
	"norm": func(args []float32) ([][]float32, error) {
		vs, err := vectors(args, 1)
		if err != nil {
			return nil, err
		}
		return [][]float32{{vs[0].Norm()}}, nil
	},
	"normalize": func(args []float32) ([][]float32, error) {
		vs, err := vectors(args, 1)
		if err != nil {
			return nil, err
		}
		vs[0].Normalize()
		return [][]float32{vecRow(vs[0])}, nil
	},
	"angle": func(args []float32) ([][]float32, error) {
		vs, err := vectors(args, 2)
		if err != nil {
			return nil, err
		}
		return [][]float32{{vs[0].Angle(vs[1])}}, nil
	},
	"identity": func(args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, ErrArgumentNumber
		}
		return matRows(mat.Identity()), nil
	},
	"det": func(args []float32) ([][]float32, error) {
		m, err := matrix(args)
		if err != nil {
			return nil, err
		}
		return [][]float32{{m.Det()}}, nil
	},
	"transpose": func(args []float32) ([][]float32, error) {
		m, err := matrix(args)
		if err != nil {
			return nil, err
		}
		m.Transpose()
		return matRows(m), nil
	},
	"orthonormalize": func(args []float32) ([][]float32, error) {
		m, err := matrix(args)
		if err != nil {
			return nil, err
		}
		m.Orthonormalize()
		return matRows(m), nil
	},
	"mul": func(args []float32) ([][]float32, error) {
		if len(args) != 18 {
			return nil, ErrArgumentNumber
		}
		a, err := matrix(args[:9])
		if err != nil {
			return nil, err
		}
		b, err := matrix(args[9:])
		if err != nil {
			return nil, err
		}
		return matRows(a.Mul(b)), nil
	},
	"mulvec": func(args []float32) ([][]float32, error) {
		if len(args) != 12 {
			return nil, ErrArgumentNumber
		}
		m, err := matrix(args[:9])
		if err != nil {
			return nil, err
		}
		return [][]float32{vecRow(m.MulVec3(mat.NewVec3(args[9], args[10], args[11])))}, nil
	},
}

// textCommands produce preformatted text.
var textCommands = map[string]func(args []float32) (string, error){
	"print": func(args []float32) (string, error) {
		m, err := matrix(args)
		if err != nil {
			return "", err
		}
		return m.String(), nil
	},
}

// Console runs single command lines.
type Console struct{}

// Commands returns the sorted names of the available commands.
func (c *Console) Commands() []string {
	names := make([]string, 0, len(commands)+len(textCommands))
	for name := range commands {
		names = append(names, name)
	}
	for name := range textCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseArgs(args []string) ([]float32, error) {
	var argsFloat []float32
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	return argsFloat, nil
}

// Run executes line and returns its textual result.
// An empty line yields an empty result.
func (c *Console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	if fn, ok := textCommands[args[0]]; ok {
		argsFloat, err := parseArgs(args[1:])
		if err != nil {
			return "", err
		}
		return fn(argsFloat)
	}
	fn, ok := commands[args[0]]
	if !ok {
		return "", ErrInvalidCommand
	}
	argsFloat, err := parseArgs(args[1:])
	if err != nil {
		return "", err
	}
	res, err := fn(argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
