package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	id int
}

func (j testJob) JobID() int { return j.id }

func TestBackgroundWorker(t *testing.T) {
	const jobs = 50

	worker := NewBackgroundWorker(4, jobs, func(job testJob) int {
		return job.id * 2
	})
	worker.Start()
	for i := 0; i < jobs; i++ {
		worker.TriggerProcessing(testJob{id: i})
	}
	worker.Close()

	results := []int{}
	for result := range worker.Results() {
		results = append(results, result)
	}
	sort.Ints(results)

	assert.Len(t, results, jobs)
	for i := 0; i < jobs; i++ {
		assert.Equal(t, i*2, results[i])
	}
}
