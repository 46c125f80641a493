package stats

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	l := NewCSVLogger(path)

	require.NoError(t, l.Append(Record{
		Process:     "blur",
		Parallel:    true,
		Tasks:       4,
		Kernel:      5,
		Elapsed:     1500 * time.Microsecond,
		Description: "ok",
	}))
	require.NoError(t, l.Append(Record{
		Process: "invert",
		Tasks:   1,
		Elapsed: time.Millisecond,
	}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, header, rows[0])
	require.Equal(t, []string{"blur", "yes", "4", "5", "1.500", "ok"}, rows[1])
	require.Equal(t, []string{"invert", "no", "1", "-", "1.000", ""}, rows[2])
}

func TestKernellessRecordLogsDash(t *testing.T) {
	rec := Record{Process: "grayscale", Tasks: 2, Parallel: true}
	require.Equal(t, "-", rec.row()[3])
}
