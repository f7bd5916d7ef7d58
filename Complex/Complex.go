package Complex

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Complex is an ordered, printable pair of a real and an imaginary part. The order is
// lexicographic: real parts first, imaginary parts break ties. It isn't the order of
// magnitudes.
type Complex struct {
	Re, Im float64
}

func New(re, im float64) Complex {
	return Complex{re, im}
}

// Compare returns -1, 0 or +1 like cmp.Compare. It can be passed to Trees.NewFunc as the
// method expression Complex.Compare.
func (u Complex) Compare(o Complex) int {
	if c := cmp.Compare(u.Re, o.Re); c != 0 {
		return c
	}
	return cmp.Compare(u.Im, o.Im)
}

func (u Complex) Equal(o Complex) bool {
	return u.Re == o.Re && u.Im == o.Im
}

func (u Complex) Less(o Complex) bool {
	return u.Compare(o) < 0
}

func (u Complex) String() string {
	return strconv.FormatFloat(u.Re, 'g', -1, 64) + " + " + strconv.FormatFloat(u.Im, 'g', -1, 64) + "i"
}

// Parse reads "re,im" or a plain real number "re".
func Parse(s string) (Complex, error) {
	rs, is, hasIm := strings.Cut(s, ",")
	re, e := strconv.ParseFloat(strings.TrimSpace(rs), 64)
	if e != nil {
		return Complex{}, fmt.Errorf("parse complex %q: %w", s, e)
	}
	if !hasIm {
		return Complex{re, 0}, nil
	}
	im, e := strconv.ParseFloat(strings.TrimSpace(is), 64)
	if e != nil {
		return Complex{}, fmt.Errorf("parse complex %q: %w", s, e)
	}
	return Complex{re, im}, nil
}
