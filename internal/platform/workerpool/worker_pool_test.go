// internal/platform/workerpool/worker_pool_test.go
package workerpool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectx/internal/testutil"
)

type fakeTask struct {
	name   string
	weight int
	delay  time.Duration
	err    error
	runs   *atomic.Int32
	gate   chan struct{}
}

func (f *fakeTask) Name() string { return f.name }
func (f *fakeTask) Weight() int  { return f.weight }

func (f *fakeTask) Execute(ctx context.Context, w io.Writer) error {
	if f.runs != nil {
		f.runs.Add(1)
	}
	if f.gate != nil {
		<-f.gate
	}
	time.Sleep(f.delay)
	fmt.Fprintf(w, "begin %s\nend %s\n", f.name, f.name)
	return f.err
}

type panicTask struct{ name string }

func (p *panicTask) Name() string { return p.name }
func (p *panicTask) Weight() int  { return 0 }

func (p *panicTask) Execute(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "begin %s\n", p.name)
	panic(p.name)
}

func newPool(workers int) *WorkerPool {
	return NewWorkerPool(WorkerPoolConfig{Workers: workers, Logger: testutil.NewTestLogger()})
}

func TestRun_OutputInSubmissionOrder(t *testing.T) {
	tasks := []Task{
		&fakeTask{name: "a", delay: 30 * time.Millisecond},
		&fakeTask{name: "b", delay: 1 * time.Millisecond},
		&fakeTask{name: "c", delay: 15 * time.Millisecond},
		&fakeTask{name: "d"},
	}

	var out bytes.Buffer
	results := newPool(4).Run(context.Background(), &out, tasks)

	assert.Equal(t, "begin a\nend a\nbegin b\nend b\nbegin c\nend c\nbegin d\nend d\n", out.String())
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Same(t, tasks[i], r.Task)
		assert.NoError(t, r.Error)
	}
}

func TestRun_SameOutputAsSingleWorker(t *testing.T) {
	var tasks []Task
	for i := 0; i < 20; i++ {
		tasks = append(tasks, &fakeTask{name: fmt.Sprintf("t%02d", i), weight: i % 3, delay: time.Duration(i%4) * time.Millisecond})
	}

	var seq, par bytes.Buffer
	NewWorkerPool(WorkerPoolConfig{Workers: 1}).Run(context.Background(), &seq, tasks)
	NewWorkerPool(WorkerPoolConfig{Workers: 8, Scheduler: NewWeightedScheduler()}).Run(context.Background(), &par, tasks)

	assert.Equal(t, seq.String(), par.String())
}

func TestRun_Errors(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		&fakeTask{name: "ok"},
		&fakeTask{name: "bad", err: boom},
	}

	var out bytes.Buffer
	results := newPool(2).Run(context.Background(), &out, tasks)

	assert.NoError(t, results[0].Error)
	assert.ErrorIs(t, results[1].Error, boom)
	assert.Contains(t, out.String(), "end bad")

	ok, failed, canceled := Summary(results)
	assert.Equal(t, []int{1, 1, 0}, []int{ok, failed, canceled})
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	results := newPool(2).Run(context.Background(), &out, nil)
	assert.Empty(t, results)
	assert.Empty(t, out.String())
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := &atomic.Int32{}
	tasks := []Task{
		&fakeTask{name: "a", runs: runs},
		&fakeTask{name: "b", runs: runs},
		&fakeTask{name: "c", runs: runs},
	}

	var out bytes.Buffer
	results := newPool(2).Run(ctx, &out, tasks)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Canceled(), r.Task.Name())
	}
	assert.Zero(t, runs.Load())
	assert.Empty(t, out.String())
}

func TestRun_CancelStopsDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gate := make(chan struct{})
	runs := &atomic.Int32{}
	tasks := []Task{&fakeTask{name: "first", runs: runs, gate: gate}}
	for i := 0; i < 5; i++ {
		tasks = append(tasks, &fakeTask{name: fmt.Sprintf("later%d", i), runs: runs})
	}

	go func() {
		for runs.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
		time.Sleep(5 * time.Millisecond)
		close(gate)
	}()

	var out bytes.Buffer
	results := newPool(1).Run(ctx, &out, tasks)

	assert.NoError(t, results[0].Error)
	assert.Equal(t, "begin first\nend first\n", out.String())
	for _, r := range results[1:] {
		assert.ErrorIs(t, r.Error, context.Canceled, r.Task.Name())
	}
	assert.Equal(t, int32(1), runs.Load())

	_, _, canceled := Summary(results)
	assert.Equal(t, 5, canceled)
}

func TestSchedulers(t *testing.T) {
	tasks := []Task{
		&fakeTask{name: "light", weight: 1},
		&fakeTask{name: "heavy", weight: 9},
		&fakeTask{name: "mid", weight: 5},
		&fakeTask{name: "heavy2", weight: 9},
	}

	assert.Equal(t, []int{0, 1, 2, 3}, NewFIFOScheduler().Order(tasks))
	assert.Equal(t, []int{1, 3, 2, 0}, NewWeightedScheduler().Order(tasks))
	assert.Equal(t, "fifo", NewFIFOScheduler().Name())
	assert.Equal(t, "weighted", NewWeightedScheduler().Name())
}

func TestNewWorkerPool_Defaults(t *testing.T) {
	wp := NewWorkerPool(WorkerPoolConfig{})
	assert.Equal(t, 4, wp.workers)
	assert.Equal(t, "fifo", wp.scheduler.Name())

	var out strings.Builder
	results := wp.Run(context.Background(), &out, []Task{&fakeTask{name: "x"}})
	assert.Len(t, results, 1)
	assert.Equal(t, "begin x\nend x\n", out.String())
}

const crashChildEnv = "WORKERPOOL_CRASH_CHILD"

func TestRun_PanicFlushesOutput(t *testing.T) {
	if os.Getenv(crashChildEnv) == "1" {
		tasks := []Task{&fakeTask{name: "a"}, &panicTask{name: "b"}, &fakeTask{name: "c"}}
		newPool(1).Run(context.Background(), os.Stdout, tasks)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestRun_PanicFlushesOutput$")
	cmd.Env = append(os.Environ(), crashChildEnv+"=1")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "begin a\nend a\nbegin b\n", stdout.String())
}

func TestOrderedOutput_FlushCrash(t *testing.T) {
	var out bytes.Buffer
	o := newOrderedOutput(&out, 4, testutil.NewTestLogger())

	o.buffer(0).WriteString("zero\n")
	o.finish(0)
	o.flush(0)
	o.buffer(1).WriteString("one, running\n")
	o.buffer(2).WriteString("two, partial\n")
	o.buffer(3).WriteString("three\n")
	o.finish(3)

	o.flushCrash(2)
	o.flushCrash(3)
	o.flush(1)

	assert.Equal(t, "zero\ntwo, partial\nthree\n", out.String())
}
