// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"inspectx/internal/platform/logx"
)

// Task representa una tarea a ejecutar en el worker pool.
type Task interface {
	// Execute ejecuta la tarea escribiendo su salida en w
	Execute(ctx context.Context, w io.Writer) error

	// Weight retorna el costo estimado de la tarea
	Weight() int

	// Name retorna el nombre de la tarea
	Name() string
}

// Scheduler define el orden de despacho. No afecta al orden de la salida.
type Scheduler interface {
	// Order retorna los índices de tasks en el orden en que se despachan
	Order(tasks []Task) []int

	// Name retorna el nombre del scheduler
	Name() string
}

// WorkerPool ejecuta tareas en paralelo y emite su salida en el orden de
// envío, como si se hubieran ejecutado una detrás de otra.
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger
}

// TaskResult representa el resultado de una tarea.
type TaskResult struct {
	Task     Task
	Error    error
	Duration time.Duration
}

// Canceled reporta si la tarea no llegó a ejecutarse por cancelación.
func (r TaskResult) Canceled() bool {
	return errors.Is(r.Error, context.Canceled) || errors.Is(r.Error, context.DeadlineExceeded)
}

// WorkerPoolConfig configura el worker pool.
type WorkerPoolConfig struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger
}

// NewWorkerPool crea un nuevo worker pool.
func NewWorkerPool(cfg WorkerPoolConfig) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.NewNop()
	}

	return &WorkerPool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
	}
}

type job struct {
	idx  int
	task Task
}

// Run ejecuta tasks y copia la salida de cada una a out en orden de envío,
// en cuanto todas las anteriores han terminado. Retorna un resultado por
// tarea, en el mismo orden. Las tareas no despachadas tras cancelar ctx
// terminan con ctx.Err(). Un panic dentro de una tarea no se recupera, pero
// antes de propagarse se vuelca la salida ya producida.
func (wp *WorkerPool) Run(ctx context.Context, out io.Writer, tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	n := len(tasks)
	results := make([]TaskResult, n)
	output := newOrderedOutput(out, n, wp.logger)
	done := make([]chan struct{}, n)
	for i := range done {
		done[i] = make(chan struct{})
		results[i].Task = tasks[i]
	}

	order := wp.scheduler.Order(tasks)
	workers := min(wp.workers, n)

	wp.logger.Debug("submitting tasks",
		"total", n,
		"workers", workers,
		"scheduler", wp.scheduler.Name(),
	)

	queue := make(chan job)

	// Despachar: lo que no llega a la cola se marca como cancelado aquí
	go func() {
		defer close(queue)
		for pos, idx := range order {
			select {
			case queue <- job{idx: idx, task: tasks[idx]}:
			case <-ctx.Done():
				for _, rest := range order[pos:] {
					results[rest].Error = ctx.Err()
					close(done[rest])
				}
				wp.logger.Warn("dispatch stopped", "pending", len(order)-pos, "reason", ctx.Err().Error())
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go wp.worker(ctx, &wg, i, queue, results, output, done)
	}

	// Volcar en orden de envío
	for i := range tasks {
		<-done[i]
		output.flush(i)
	}

	wg.Wait()
	return results
}

// worker es el goroutine que procesa tareas.
func (wp *WorkerPool) worker(ctx context.Context, wg *sync.WaitGroup, id int, queue <-chan job,
	results []TaskResult, output *orderedOutput, done []chan struct{}) {
	defer wg.Done()

	for j := range queue {
		if err := ctx.Err(); err != nil {
			results[j.idx].Error = err
			close(done[j.idx])
			continue
		}

		start := time.Now()
		err := wp.execute(ctx, j, output)
		results[j.idx].Error = err
		results[j.idx].Duration = time.Since(start)

		wp.logger.Debug("task completed",
			"worker_id", id,
			"task", j.task.Name(),
			"duration_ms", results[j.idx].Duration.Milliseconds(),
			"error", err != nil,
		)
		close(done[j.idx])
	}
}

// execute corre una tarea. Si la tarea entra en pánico, la salida terminada
// y la parcial de esta tarea se escriben antes de que el pánico siga.
func (wp *WorkerPool) execute(ctx context.Context, j job, output *orderedOutput) error {
	completed := false
	defer func() {
		if !completed {
			wp.logger.Warn("task panicked, flushing output", "task", j.task.Name())
			output.flushCrash(j.idx)
		}
	}()

	err := j.task.Execute(ctx, output.buffer(j.idx))
	completed = true
	output.finish(j.idx)
	return err
}

// orderedOutput guarda la salida de cada tarea hasta que puede escribirse
// en orden de envío.
type orderedOutput struct {
	mu       sync.Mutex
	out      io.Writer
	buffers  []bytes.Buffer
	finished []bool
	next     int // primera tarea aún no escrita
	crashed  bool
	logger   logx.Logger
}

func newOrderedOutput(out io.Writer, n int, logger logx.Logger) *orderedOutput {
	return &orderedOutput{
		out:      out,
		buffers:  make([]bytes.Buffer, n),
		finished: make([]bool, n),
		logger:   logger,
	}
}

// buffer solo lo usa la tarea idx mientras se ejecuta.
func (o *orderedOutput) buffer(idx int) *bytes.Buffer {
	return &o.buffers[idx]
}

func (o *orderedOutput) finish(idx int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished[idx] = true
}

// flush escribe la salida de idx; todas las anteriores ya se escribieron.
func (o *orderedOutput) flush(idx int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.crashed {
		return
	}
	o.write(idx)
	o.next = idx + 1
}

// flushCrash escribe, en orden de envío, lo pendiente de las tareas
// terminadas y la salida parcial de idx.
func (o *orderedOutput) flushCrash(idx int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.crashed {
		return
	}
	o.crashed = true
	for k := o.next; k < len(o.buffers); k++ {
		if k == idx || o.finished[k] {
			o.write(k)
		}
	}
}

func (o *orderedOutput) write(idx int) {
	buf := &o.buffers[idx]
	if buf.Len() > 0 {
		if _, err := o.out.Write(buf.Bytes()); err != nil {
			o.logger.Warn("failed to write task output", "index", idx, "error", err.Error())
		}
	}
	*buf = bytes.Buffer{}
}

// Summary cuenta resultados correctos, fallidos y cancelados.
func Summary(results []TaskResult) (ok, failed, canceled int) {
	for _, r := range results {
		switch {
		case r.Error == nil:
			ok++
		case r.Canceled():
			canceled++
		default:
			failed++
		}
	}
	return ok, failed, canceled
}
