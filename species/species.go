// Package species maps chemical symbols to atomic numbers and back.
//
// The table covers elements 1-118; index 0 is the placeholder symbol "X"
// used for unknown or test species.
package species

import "fmt"

// Symbols lists the chemical symbols indexed by atomic number.
var Symbols = [119]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var numbers = func() map[string]int {
	m := make(map[string]int, len(Symbols))
	for z, s := range Symbols {
		m[s] = z
	}
	return m
}()

// ErrUnknownSymbol indicates a chemical symbol not present in the table.
type ErrUnknownSymbol struct {
	Symbol string
}

func (e *ErrUnknownSymbol) Error() string {
	return fmt.Sprintf("unknown chemical symbol: %q", e.Symbol)
}

// AtomicNumber returns the atomic number for a chemical symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := numbers[symbol]
	if !ok {
		return 0, &ErrUnknownSymbol{Symbol: symbol}
	}
	return z, nil
}

// Symbol returns the chemical symbol for an atomic number.
func Symbol(z int) (string, error) {
	if z < 0 || z >= len(Symbols) {
		return "", fmt.Errorf("atomic number out of range: %d", z)
	}
	return Symbols[z], nil
}
