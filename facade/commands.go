// SPDX-License-Identifier: MIT
package facade

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fingroup/conjugacy"
	"github.com/katalvlaran/fingroup/group"
)

// parseCommand splits a command string of shape Cmd[Arg] into its name and
// argument. Whitespace around the brackets is not permitted: the opening
// bracket must immediately follow Cmd and the string must end at the
// closing bracket.
func parseCommand(raw string) (cmdName, arg string, err error) {
	open := strings.IndexByte(raw, '[')
	if open <= 0 || !strings.HasSuffix(raw, "]") {
		return "", "", ErrParse
	}
	cmdName = raw[:open]
	arg = raw[open+1 : len(raw)-1]
	if strings.ContainsAny(cmdName, " \t") || strings.ContainsAny(arg, "[]") {
		return "", "", ErrParse
	}

	return cmdName, arg, nil
}

// knownCommands is the fixed command dictionary from spec §6.
var knownCommands = map[string]bool{
	"?": true, "Elements": true, "Table": true,
	"ConjClass": true, "ConjCount": true, "Isomorphic": true,
	"IsAbelian": true, "IsPerfect": true, "IsSolvable": true, "IsSimple": true,
	"Center": true, "Centrizer": true, "Derived": true,
	"DerivedSeries": true, "Normal": true,
	"DirectDecompose": true, "SemidirectDecompose": true, "Decompose": true,
}

// formatElements renders ascending element indices, comma-separated.
func formatElements(elements []int) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = strconv.Itoa(e)
	}

	return strings.Join(parts, ",")
}

// formatTable renders a Subgroup's own Cayley sub-table, one row per line,
// entries space-separated.
func formatTable(sub *group.Subgroup) string {
	table := sub.CayleySub()
	n := len(table.Elements)
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, n)
		for j := 0; j < n; j++ {
			cells[j] = strconv.Itoa(table.At(i, j))
		}
		lines[i] = strings.Join(cells, " ")
	}

	return strings.Join(lines, "\n")
}

// formatConjClasses renders one "order\tsize\t[elements]" line per class.
func formatConjClasses(classes []conjugacy.Class) string {
	lines := make([]string, len(classes))
	for i, c := range classes {
		lines[i] = fmt.Sprintf("%d\t%d\t[%s]", c.Order, c.Size(), formatElements(c.Elements))
	}

	return strings.Join(lines, "\n")
}

// formatConjCount renders the fingerprint tuple as "((o,s,d),(o,s,d),...)",
// exactly the shape spec scenarios S1/S2/S4 quote.
func formatConjCount(count conjugacy.Count) string {
	parts := make([]string, len(count.Triples))
	for i, tr := range count.Triples {
		parts[i] = fmt.Sprintf("(%d,%d,%d)", tr.Order, tr.Size, tr.Degeneracy)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// formatGroupRow renders a single "name\torder\t[elements]" summary row.
func formatGroupRow(sub *group.Subgroup) string {
	return fmt.Sprintf("%s\t%d\t[%s]", sub.Name(), sub.Order(), formatElements(sub.Elements()))
}

// formatGroupRows renders one formatGroupRow line per subgroup.
func formatGroupRows(subs []*group.Subgroup) string {
	lines := make([]string, len(subs))
	for i, sub := range subs {
		lines[i] = formatGroupRow(sub)
	}

	return strings.Join(lines, "\n")
}

// formatOverview renders the "?" command's summary: name, order,
// isomorphism tag, and the four boolean flags.
func formatOverview(sub *group.Subgroup) string {
	return strings.Join([]string{
		fmt.Sprintf("name\t%s", sub.Name()),
		fmt.Sprintf("order\t%d", sub.Order()),
		fmt.Sprintf("isomorphic\t%s", sub.Isomorphic()),
		isAbelianProse.render(sub.Name(), sub.IsAbelian()),
		isPerfectProse.render(sub.Name(), sub.IsPerfect()),
		isSolvableProse.render(sub.Name(), sub.IsSolvable()),
		isSimpleProse.render(sub.Name(), sub.IsSimple()),
	}, "\n")
}
