package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssmlab/loorun/pkg/loo/measure"
)

func TestDefaultMeasureJobs(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddJob("search:CDC7")
	mt.SetDuration(1500 * time.Microsecond)

	got := msr.GetJob("search:CDC7")
	require.NotNil(t, got)
	assert.Equal(t, 2*time.Millisecond, got.Duration())

	assert.Nil(t, msr.GetJob("search:GHOST"))
	assert.Len(t, msr.AllJobs(), 1)
}

func TestDefaultMeasurePhases(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	msr.SetPhaseDuration("search", 3*time.Second)

	assert.Equal(t, 3*time.Second, msr.PhaseDuration("search"))
	assert.Equal(t, time.Duration(0), msr.PhaseDuration("plot"))
}
