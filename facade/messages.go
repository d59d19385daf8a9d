// SPDX-License-Identifier: MIT
package facade

import "fmt"

// boolProse pairs the affirmative and negative prose for one boolean flag
// query, keyed by the group's display name at format time.
type boolProse struct {
	affirmative string
	negative    string
}

// The negative IsAbelian prose carries the original implementation's
// locale string for "non-abelian" (per spec scenario S5); the other three
// flag queries get analogous affirmative/negative prose so the facade's
// output is uniform across all four flag commands.
var (
	isAbelianProse = boolProse{
		affirmative: "%s is abelian",
		negative:    "%s is 非可換 (non-abelian)",
	}
	isPerfectProse = boolProse{
		affirmative: "%s is perfect",
		negative:    "%s is not perfect",
	}
	isSolvableProse = boolProse{
		affirmative: "%s is solvable",
		negative:    "%s is not solvable",
	}
	isSimpleProse = boolProse{
		affirmative: "%s is simple",
		negative:    "%s is not simple",
	}
)

// render formats the yes/no verdict and its paired prose for name.
func (p boolProse) render(name string, value bool) string {
	verdict := "no"
	format := p.negative
	if value {
		verdict = "yes"
		format = p.affirmative
	}

	return fmt.Sprintf("%s\t%s", verdict, fmt.Sprintf(format, name))
}
