package concurrent

import "sync"

type JobI interface {
	JobID() int
}

type JobFunc[T JobI, G any] func(T) G

// BackgroundWorker fans job processing out to a fixed pool of goroutines and
// streams each job's result into a buffered results channel. The buffer must
// be large enough for every submitted job when the caller drains results only
// after Close.
type BackgroundWorker[T JobI, G any] struct {
	workers   int
	msgC      chan T
	resultC   chan G
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]
}

func NewBackgroundWorker[T JobI, G any](workers, buffer int, jobFunc JobFunc[T, G]) *BackgroundWorker[T, G] {
	return &BackgroundWorker[T, G]{
		workers: workers,
		msgC:    make(chan T, buffer),
		resultC: make(chan G, buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T, G]) TriggerProcessing(jobData T) {
	bw.msgC <- jobData
}

func (bw *BackgroundWorker[T, G]) Results() <-chan G {
	return bw.resultC
}

func (bw *BackgroundWorker[T, G]) Start() {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for jobData := range bw.msgC {
				bw.resultC <- bw.jobFunc(jobData)
			}
		}()
	}
}

// Close stops accepting jobs, waits for the in-flight ones and closes the
// results channel.
func (bw *BackgroundWorker[T, G]) Close() {
	close(bw.msgC)
	bw.waitGroup.Wait()
	close(bw.resultC)
}
