package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/calibmat/internal/console"
	"github.com/seqsense/calibmat/internal/matfile"
	"github.com/seqsense/calibmat/mat"
)

func loadMatrix(path string) (mat.Mat3, *matfile.Document, error) {
	d, err := matfile.Load(path)
	if err != nil {
		return mat.Mat3{}, nil, err
	}
	m, err := d.Matrix()
	if err != nil {
		return mat.Mat3{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("loaded %s", path)
	return m, d, nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 3, 32)
}

func writeMatrix(w io.Writer, m mat.Mat3) error {
	if viper.GetString("output") == outputYAML {
		return matfile.Encode(w, matfile.NewDocument(m))
	}
	return mat.Fprint(w, m)
}

func writeVector(w io.Writer, v mat.Vec3) error {
	if viper.GetString("output") == outputYAML {
		a := v.Array()
		return yaml.NewEncoder(w).Encode(map[string][]float32{"vector": a[:]})
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	return err
}

func writeScalar(w io.Writer, name string, f float32) error {
	if viper.GetString("output") == outputYAML {
		return yaml.NewEncoder(w).Encode(map[string]float32{name: f})
	}
	_, err := fmt.Fprintln(w, formatFloat(f))
	return err
}

var detCmd = &cobra.Command{
	Use:   "det FILE",
	Short: "Print the determinant of a matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		return writeScalar(cmd.OutOrStdout(), "det", m.Det())
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose FILE",
	Short: "Print the transposed matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		m.Transpose()
		return writeMatrix(cmd.OutOrStdout(), m)
	},
}

var orthonormalizeCmd = &cobra.Command{
	Use:   "orthonormalize FILE",
	Short: "Orthonormalize the matrix columns by Gram-Schmidt",
	Long: `Orthonormalize the matrix columns by the classical Gram-Schmidt process.

The columns must be linearly independent, otherwise the result contains NaN.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		if nearlyDependent(m) {
			logger.Printf("%s: columns are nearly linearly dependent, det: %g", args[0], m.Det())
		}
		m.Orthonormalize()
		if !isFinite(m) {
			logger.Printf("%s: orthonormalized matrix is not finite", args[0])
		}
		return writeMatrix(cmd.OutOrStdout(), m)
	},
}

// dependenceTolerance bounds |det| relative to the product of the column
// norms, which is the largest |det| columns of those lengths can have.
const dependenceTolerance = 1e-4

func nearlyDependent(m mat.Mat3) bool {
	bound := m.V1.Norm() * m.V2.Norm() * m.V3.Norm()
	return float32(math.Abs(float64(m.Det()))) <= dependenceTolerance*bound
}

func isFinite(m mat.Mat3) bool {
	for _, f := range m.Elems() {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

var mulCmd = &cobra.Command{
	Use:   "mul FILE FILE",
	Short: "Print the product of two matrices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		b, _, err := loadMatrix(args[1])
		if err != nil {
			return err
		}
		return writeMatrix(cmd.OutOrStdout(), a.Mul(b))
	},
}

var mulvecCmd = &cobra.Command{
	Use:   "mulvec FILE",
	Short: "Print the product of the matrix and the vector of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, d, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		v, ok, err := d.Vector3()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if !ok {
			return fmt.Errorf("%s: no vector", args[0])
		}
		return writeVector(cmd.OutOrStdout(), m.MulVec3(v))
	},
}

var printCmd = &cobra.Command{
	Use:   "print FILE",
	Short: "Print a matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		return writeMatrix(cmd.OutOrStdout(), m)
	},
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run operations read line by line from stdin",
	Long: `Run operations read line by line from stdin.

Vectors are given as three numbers, matrices as nine numbers in
column-major order, e.g.

  det 1 0 0 0 1 0 0 0 1
  mulvec 1 0 0 0 1 0 0 0 1 1 2 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runConsole(r io.Reader, w io.Writer) error {
	c := &console.Console{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		res, err := c.Run(sc.Text())
		if err == console.ErrInvalidCommand {
			fmt.Fprintf(w, "error: %v, available: %s\n", err, strings.Join(c.Commands(), " "))
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if res == "" {
			continue
		}
		if res[len(res)-1] != '\n' {
			res += "\n"
		}
		if _, err := io.WriteString(w, res); err != nil {
			return err
		}
	}
	return sc.Err()
}
