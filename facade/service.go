// SPDX-License-Identifier: MIT
package facade

import (
	"fmt"

	"github.com/katalvlaran/fingroup/group"
)

// Service wraps a MasterGroup and dispatches Cmd[Arg] command strings to
// its Subgroup/MasterGroup queries, converting every downstream failure
// into a user-visible string per spec §7's propagation policy: the Service
// itself never aborts, it only ever returns a (string, error) pair and is
// ready for the next command.
type Service struct {
	master *group.MasterGroup
}

// NewService wraps master and registers the whole-group Subgroup under
// the display name "g0", the conventional first argument used throughout
// spec §8's scenarios (e.g. ConjCount[g0]).
func NewService(master *group.MasterGroup) (*Service, error) {
	seed := make([]int, master.Order())
	for i := range seed {
		seed[i] = i
	}

	whole, err := master.GenerateGroup(seed)
	if err != nil {
		return nil, fmt.Errorf("facade: NewService: %w", err)
	}
	whole.SetName("g0")

	return &Service{master: master}, nil
}

// Run parses and executes one command string to completion, returning its
// formatted output or a distinct error for parse failures, unknown
// commands, unknown group names, or a decomposition whose factor cannot be
// resolved to a cached subgroup (ErrInternal).
func (s *Service) Run(command string) (string, error) {
	cmdName, arg, err := parseCommand(command)
	if err != nil {
		return "", err
	}
	if !knownCommands[cmdName] {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmdName)
	}

	sub, ok := s.master.NameToGroup(arg)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownGroup, arg)
	}

	switch cmdName {
	case "?":
		return formatOverview(sub), nil
	case "Elements":
		return formatElements(sub.Elements()), nil
	case "Table":
		return formatTable(sub), nil
	case "ConjClass":
		return formatConjClasses(sub.ConjugacyClasses()), nil
	case "ConjCount":
		return formatConjCount(sub.ConjugacyCount()), nil
	case "Isomorphic":
		return sub.Isomorphic(), nil
	case "IsAbelian":
		return isAbelianProse.render(sub.Name(), sub.IsAbelian()), nil
	case "IsPerfect":
		return isPerfectProse.render(sub.Name(), sub.IsPerfect()), nil
	case "IsSolvable":
		return isSolvableProse.render(sub.Name(), sub.IsSolvable()), nil
	case "IsSimple":
		return isSimpleProse.render(sub.Name(), sub.IsSimple()), nil
	case "Center":
		return formatGroupRow(sub.Center()), nil
	case "Centrizer":
		return formatGroupRow(sub.CentralizerInMaster()), nil
	case "Derived":
		return formatGroupRow(sub.Derived()), nil
	case "DerivedSeries":
		return formatGroupRows(sub.DerivedSeries()), nil
	case "Normal":
		return formatGroupRows(sub.AllNormalSub()), nil
	case "DirectDecompose":
		return s.formatDirectDecompose(sub)
	case "SemidirectDecompose":
		return s.formatSemidirectDecompose(sub)
	case "Decompose":
		direct, err := s.formatDirectDecompose(sub)
		if err != nil {
			return "", err
		}
		semi, err := s.formatSemidirectDecompose(sub)
		if err != nil {
			return "", err
		}

		return direct + "\n" + semi, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNotImplemented, cmdName)
	}
}

func (s *Service) formatDirectDecompose(sub *group.Subgroup) (string, error) {
	pairs := sub.DirectProducts()
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		left, leftOK := s.master.GroupBySignature(p.Left)
		right, rightOK := s.master.GroupBySignature(p.Right)
		if !leftOK || !rightOK {
			return "", fmt.Errorf("%w: direct decompose: dangling signature", ErrInternal)
		}
		lines = append(lines, fmt.Sprintf("%s x %s", left.Name(), right.Name()))
	}

	return joinOrNone(lines), nil
}

func (s *Service) formatSemidirectDecompose(sub *group.Subgroup) (string, error) {
	pairs := sub.SemidirectProducts()
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		normal, normalOK := s.master.GroupBySignature(p.Normal)
		complement, complementOK := s.master.GroupBySignature(p.Complement)
		if !normalOK || !complementOK {
			return "", fmt.Errorf("%w: semidirect decompose: dangling signature", ErrInternal)
		}
		lines = append(lines, fmt.Sprintf("%s : %s", normal.Name(), complement.Name()))
	}

	return joinOrNone(lines), nil
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "none"
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}

	return out
}
