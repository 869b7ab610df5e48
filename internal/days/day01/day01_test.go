package day01

import (
	"testing"

	"github.com/danmuck/advent2024/internal/location"
	"github.com/danmuck/advent2024/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3"

func TestPartOne(t *testing.T) {
	testlog.Start(t)
	got, err := PartOne(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

func TestPartTwo(t *testing.T) {
	testlog.Start(t)
	got, err := PartTwo(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 31, got)
}

func TestPartsShareNoState(t *testing.T) {
	testlog.Start(t)
	for range 3 {
		one, err := PartOne(sampleInput)
		require.NoError(t, err)
		two, err := PartTwo(sampleInput)
		require.NoError(t, err)
		assert.Equal(t, 11, one)
		assert.Equal(t, 31, two)
	}
}

func TestMalformedInputFailsBothParts(t *testing.T) {
	testlog.Start(t)
	_, err := PartOne("1 2\n3")
	assert.ErrorIs(t, err, location.ErrMissingColumn)
	_, err = PartTwo("1 x")
	assert.ErrorIs(t, err, location.ErrInvalidLocation)
}

func TestSolverMetadata(t *testing.T) {
	testlog.Start(t)
	s := Solver()
	assert.Equal(t, "day01", s.Metadata().ID)
	got, err := s.SolvePartOne(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}
