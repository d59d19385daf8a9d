// SPDX-License-Identifier: MIT
package structure_test

import (
	"testing"

	"github.com/katalvlaran/fingroup/structure"
	"github.com/stretchr/testify/require"
)

func TestCartesianOutcome_Invalid(t *testing.T) {
	t.Parallel()

	o := structure.InvalidCartesianOutcome()
	require.False(t, o.HasValue())
	require.False(t, o.IsDirect())
	require.Equal(t, structure.Invalid, o.Kind())
}

func TestCartesianOutcome_Direct(t *testing.T) {
	t.Parallel()

	o := structure.NewCartesianOutcome(structure.Direct, "sig-1")
	require.True(t, o.HasValue())
	require.True(t, o.IsDirect())
	require.Equal(t, "sig-1", o.Signature())
}

func TestQuotientOutcome(t *testing.T) {
	t.Parallel()

	require.False(t, structure.InvalidQuotientOutcome().HasValue())

	valid := structure.NewQuotientOutcome("sig-2")
	require.True(t, valid.HasValue())
	require.Equal(t, "sig-2", valid.Signature())
}
