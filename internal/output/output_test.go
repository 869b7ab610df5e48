package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/danmuck/advent2024/internal/puzzle"
	"github.com/danmuck/advent2024/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReports() []puzzle.Report {
	return []puzzle.Report{
		{
			ID: "day01", Day: 1, Name: "Historian Hysteria",
			PartOne: puzzle.PartResult{Value: 11, Duration: time.Millisecond},
			PartTwo: puzzle.PartResult{Value: 31, Duration: 2 * time.Millisecond},
		},
		{
			ID: "day02", Day: 2, Name: "Red-Nosed Reports",
			PartOne: puzzle.PartResult{Value: 2},
			PartTwo: puzzle.PartResult{Err: errors.New("line 3: bad")},
		},
	}
}

func TestParseFormat(t *testing.T) {
	testlog.Start(t)
	for raw, want := range map[string]Format{"": FormatText, "TEXT": FormatText, " json ": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatText}.Render(&buf, sampleReports()))

	want := "Advent of code 2024 day 1\n" +
		"Part 1: 11\n" +
		"Part 2: 31\n" +
		"\n" +
		"Advent of code 2024 day 2\n" +
		"Part 1: 2\n" +
		"Part 2: Failed to solve part 2: line 3: bad\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextWithColor(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatText, Color: true}.Render(&buf, sampleReports()[:1]))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "11")
}

func TestRenderJSON(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatJSON}.Render(&buf, sampleReports()))

	var got []ReportView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 31, got[0].PartTwo.Value)
	assert.Equal(t, "1ms", got[0].PartOne.Duration)
	assert.Equal(t, "line 3: bad", got[1].PartTwo.Error)
	assert.Empty(t, got[1].PartOne.Error)
}

func TestRenderYAML(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	require.NoError(t, Renderer{Format: FormatYAML}.Render(&buf, sampleReports()))
	assert.Contains(t, buf.String(), "part_one:")

	var got []ReportView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "day02", got[1].ID)
	assert.Equal(t, 2, got[1].PartOne.Value)
}

func TestRenderUnknownFormat(t *testing.T) {
	testlog.Start(t)
	err := Renderer{Format: "xml"}.Render(&bytes.Buffer{}, nil)
	assert.Error(t, err)
}
