package mat

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// formatElem renders f as sign column, two integer digits and three
// truncated fractional digits followed by a space.
// Values inside the int32 range are rendered by integer conversions only.
func formatElem(sb *strings.Builder, f float32) {
	switch {
	case math.IsNaN(float64(f)):
		fmt.Fprintf(sb, "%7s ", "NaN")
		return
	case math.IsInf(float64(f), 1):
		fmt.Fprintf(sb, "%7s ", "+Inf")
		return
	case math.IsInf(float64(f), -1):
		fmt.Fprintf(sb, "%7s ", "-Inf")
		return
	}
	sign := byte(' ')
	if f < 0 {
		sign = '-'
	}
	if f >= 1<<31 || f <= -(1<<31) {
		// Out of int32 range. float32 values this large have no fraction.
		fmt.Fprintf(sb, "%c%2.0f.000 ", sign, math.Abs(float64(f)))
		return
	}
	i := int32(f)
	frac := int32((f - float32(i)) * 1000)
	fmt.Fprintf(sb, "%c%2d.%03d ", sign, abs32(i), abs32(frac))
}

func abs32(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}

// String renders m row by row in the diagnostic fixed-point format.
func (m Mat3) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			formatElem(&sb, m.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fprint writes the diagnostic rendering of m to w.
func Fprint(w io.Writer, m Mat3) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// Print writes the diagnostic rendering of m to the standard output.
func Print(m Mat3) error {
	return Fprint(os.Stdout, m)
}
