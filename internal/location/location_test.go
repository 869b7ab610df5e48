package location

import (
	"errors"
	"strconv"
	"testing"

	"github.com/danmuck/advent2024/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3"

func TestParsePairListSortsBothSides(t *testing.T) {
	testlog.Start(t)
	pairs, err := ParsePairList(sampleInput)
	require.NoError(t, err)

	if diff := cmp.Diff(List{1, 2, 3, 3, 3, 4}, pairs.Left); diff != "" {
		t.Fatalf("left mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(List{3, 3, 3, 4, 5, 9}, pairs.Right); diff != "" {
		t.Fatalf("right mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, pairs.Len())
}

func TestParsePairListSkipsEmptyLines(t *testing.T) {
	testlog.Start(t)
	pairs, err := ParsePairList("\n1 2\n\n\r\n3 4\n")
	require.NoError(t, err)
	assert.Equal(t, 2, pairs.Len())
}

func TestParsePairListErrors(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{"UnevenColumns", "1 2\n3 4\n5", ErrMissingColumn, "line 3"},
		{"InvalidRight", "1 a\n3 4\n5 6", ErrInvalidLocation, `line 1: location: invalid location "a"`},
		{"InvalidLeft", "1 2\n-3 4", ErrInvalidLocation, `"-3"`},
		{"Overflow", "4294967296 1", ErrInvalidLocation, "line 1"},
		{"ExtraColumn", "1 2 3", ErrExtraColumn, `"3"`},
		{"SpacesOnlyLine", "1 2\n   \n3 4", ErrMissingColumn, "line 2: location: missing column: first number"},
		{"TabOnlyLine", "1 2\n\t\n3 4", ErrMissingColumn, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePairList(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseErrorKeepsRawLineNumbers(t *testing.T) {
	testlog.Start(t)
	_, err := ParsePairList("1 2\n\nx 4")
	require.ErrorIs(t, err, ErrInvalidLocation)
	assert.Contains(t, err.Error(), "line 3:")
}

func TestTotalDistance(t *testing.T) {
	testlog.Start(t)
	pairs, err := ParsePairList(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), pairs.TotalDistance())
}

func TestTotalDistanceSymmetric(t *testing.T) {
	testlog.Start(t)
	inputs := []string{
		sampleInput,
		"10 1\n20 2\n30 3",
		"7 7",
		"",
		"4294967295 0\n0 4294967295",
	}
	for i, in := range inputs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			pairs, err := ParsePairList(in)
			require.NoError(t, err)
			assert.Equal(t, pairs.TotalDistance(), pairs.Swap().TotalDistance())
		})
	}
}

func TestSimilarityScore(t *testing.T) {
	testlog.Start(t)
	pairs, err := ParsePairList(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, uint64(31), pairs.SimilarityScore())
}

func TestSimilarityScoreZeroCases(t *testing.T) {
	testlog.Start(t)
	disjoint, err := ParsePairList("1 4\n2 5\n3 6")
	require.NoError(t, err)
	assert.Zero(t, disjoint.SimilarityScore())

	empty := PairList{Left: NewList([]Location{1, 2, 3})}
	assert.Zero(t, empty.SimilarityScore())
}

func TestFrequencies(t *testing.T) {
	testlog.Start(t)
	freq := NewList([]Location{9, 3, 3, 4, 3}).Frequencies()
	assert.Equal(t, 3, freq.Count(3))
	assert.Equal(t, 1, freq.Count(9))
	assert.Zero(t, freq.Count(100))
}

func TestNewListDoesNotMutateInput(t *testing.T) {
	testlog.Start(t)
	in := []Location{3, 1, 2}
	out := NewList(in)
	assert.Equal(t, []Location{3, 1, 2}, in)
	assert.Equal(t, List{1, 2, 3}, out)
}

func TestDistance(t *testing.T) {
	testlog.Start(t)
	assert.Equal(t, uint32(2), Distance(3, 5))
	assert.Equal(t, uint32(2), Distance(5, 3))
	assert.Zero(t, Distance(8, 8))
}
