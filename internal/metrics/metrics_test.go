// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/kotorcodec/audio"
	"github.com/ik5/kotorcodec/codec"
)

var _ codec.Recorder = (*Metrics)(nil)

func TestRecordFile(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordFile("decode", audio.SFX, 100, nil)
	m.RecordFile("decode", audio.SFX, 50, nil)
	m.RecordFile("decode", audio.None, 0, nil)
	m.RecordFile("encode", audio.VO, 0, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FilesProcessed.WithLabelValues("decode", "SFX", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilesProcessed.WithLabelValues("decode", "None", ResultSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilesProcessed.WithLabelValues("encode", "VO", ResultFailed)))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.BytesWritten.WithLabelValues("decode", "SFX")))

	// no bytes series for files that wrote nothing
	assert.Equal(t, 1, testutil.CollectAndCount(m.BytesWritten))
}

func TestRecordBatch(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordBatch("encode", 10, 3, 2*time.Second)
	m.RecordBatch("encode", 5, 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BatchesRun.WithLabelValues("encode")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.BatchFiles.WithLabelValues("encode")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.BatchFailures.WithLabelValues("encode")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.BatchDuration, "kotorcodec_batch_duration_seconds"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.RecordFile("decode", audio.VO, 1, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.FilesProcessed.WithLabelValues("decode", "VO", ResultOK)))
	assert.Equal(t, 0, testutil.CollectAndCount(b.FilesProcessed))
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordFile("decode", audio.SFX, 42, nil)
	m.RecordBatch("decode", 1, 0, 10*time.Millisecond)

	path := filepath.Join(t.TempDir(), "kotorcodec.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `kotorcodec_files_processed_total{format="SFX",op="decode",result="ok"} 1`)
	assert.Contains(t, text, `kotorcodec_bytes_written_total{format="SFX",op="decode"} 42`)
	assert.Contains(t, text, "kotorcodec_batch_duration_seconds_count{op=\"decode\"} 1")
	assert.True(t, strings.Contains(text, "kotorcodec_last_run_timestamp_seconds "))

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
