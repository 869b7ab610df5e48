package observability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/advent2024/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/health", "", 200, 12*time.Millisecond)
	RecordSolve("day99", "1", time.Millisecond, nil)
}

func TestRecordSolveSplitsOutcome(t *testing.T) {
	testlog.Start(t)
	okBefore := testutil.ToFloat64(solves.WithLabelValues("day42", "2", OutcomeOK))
	errBefore := testutil.ToFloat64(solves.WithLabelValues("day42", "2", OutcomeError))

	RecordSolve("day42", "2", time.Microsecond, nil)
	RecordSolve("day42", "2", time.Microsecond, errors.New("boom"))
	RecordSolve("day42", "2", time.Microsecond, errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(solves.WithLabelValues("day42", "2", OutcomeOK)))
	assert.Equal(t, errBefore+2, testutil.ToFloat64(solves.WithLabelValues("day42", "2", OutcomeError)))
}

func TestWriteTextfile(t *testing.T) {
	testlog.Start(t)
	RecordSolve("day07", "1", time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "advent.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "advent_solver_solves_total")
	assert.Contains(t, string(data), `puzzle="day07"`)
}
