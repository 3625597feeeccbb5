package utils

import (
	"fmt"
	"strings"
)

// BCType selects how the two ghost cells at one end of a 1D field are filled
type BCType uint16

const (
	BCDirichlet BCType = iota // Fixed value
	BCNeumann                 // Zero gradient, the ghost cells copy the nearest interior cell
	BCPeriodic                // Ghost cells copy the interior cells at the opposite end
)

// String returns the string representation of a BCType
func (bc BCType) String() string {
	names := map[BCType]string{
		BCDirichlet: "Dirichlet",
		BCNeumann:   "Neumann",
		BCPeriodic:  "Periodic",
	}
	if name, ok := names[bc]; ok {
		return name
	}
	return "Unknown"
}

// BCNameMap provides a mapping from common boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"dirichlet":   BCDirichlet,
	"fixed":       BCDirichlet,
	"neumann":     BCNeumann,
	"outflow":     BCNeumann,
	"extrapolate": BCNeumann,
	"periodic":    BCPeriodic,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) (bc BCType, err error) {
	var (
		ok bool
	)
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bc, ok = BCNameMap[lowerName]; !ok {
		err = fmt.Errorf("unknown boundary condition [%s]", name)
	}
	return
}
