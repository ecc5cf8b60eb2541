package sideeffects

import (
	"context"
	"sync"
	"time"
)

// Logger определяет интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учитывает результаты выполнения отложенных задач
type MetricsRecorder interface {
	IncSideEffect(kind, outcome string)
}

// Job отложенная задача, выполняемая вне транзакции бронирования
type Job struct {
	Kind string
	Run  func(ctx context.Context) error
}

// Dispatcher выполняет отложенные задачи (почта, календарь) в фоне.
// Ошибка задачи никогда не влияет на результат операции, которая её поставила.
type Dispatcher struct {
	queue      chan Job
	log        Logger
	metrics    MetricsRecorder
	maxRetries int
	jobTimeout time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher создает диспетчер с ограниченной очередью
func NewDispatcher(queueSize, maxRetries int, log Logger, metrics MetricsRecorder) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Dispatcher{
		queue:      make(chan Job, queueSize),
		log:        log,
		metrics:    metrics,
		maxRetries: maxRetries,
		jobTimeout: 30 * time.Second,
	}
}

// Start запускает воркер обработки очереди
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.worker()
}

// Enqueue ставит задачу в очередь без блокировки вызывающего кода.
// При переполнении очереди задача отбрасывается с записью в лог и метрики.
func (d *Dispatcher) Enqueue(job Job) {
	select {
	case d.queue <- job:
	default:
		d.log.Error("Side effect queue full, dropping job: kind=%s", job.Kind)
		if d.metrics != nil {
			d.metrics.IncSideEffect(job.Kind, "dropped")
		}
	}
}

// Stop закрывает очередь и дожидается выполнения оставшихся задач
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for job := range d.queue {
		d.process(job)
	}
}

func (d *Dispatcher) process(job Job) {
	// Повторяем с экспоненциальной задержкой: 1s, 2s, 4s, ...
	backoff := time.Second

	var err error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(context.Background(), d.jobTimeout)
		err = job.Run(ctx)
		cancel()

		if err == nil {
			if d.metrics != nil {
				d.metrics.IncSideEffect(job.Kind, "success")
			}
			return
		}

		d.log.Warn("Side effect failed (attempt %d/%d): kind=%s, error=%v", attempt+1, d.maxRetries+1, job.Kind, err)
	}

	d.log.Error("Side effect abandoned after %d attempts: kind=%s, error=%v", d.maxRetries+1, job.Kind, err)
	if d.metrics != nil {
		d.metrics.IncSideEffect(job.Kind, "failed")
	}
}
