// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"context"
	"errors"

	"code.hybscloud.com/iox"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Source is an event source attached to a [Driver].
// Deliver hands at most one pending event to a waiting task and reports
// whether it did. [*Mailbox] and [*Ticker] are sources.
type Source interface {
	Deliver() bool
}

// watcher is a future watched by a driver, with its value type erased.
type watcher interface {
	step() bool
	done() bool
	serial() Serial
	rethrow() error
	close()
}

type watch[V any] struct {
	f       *Future[V]
	consume func(V)
}

// step consumes a yielded value and resumes the future.
func (w *watch[V]) step() bool {
	if w.f.Status() != Yielded {
		return false
	}
	if w.consume != nil {
		w.consume(w.f.Value())
	}
	w.f.Resume()
	return true
}

func (w *watch[V]) done() bool     { return w.f.Done() }
func (w *watch[V]) serial() Serial { return w.f.Serial() }
func (w *watch[V]) rethrow() error { return w.f.Rethrow() }
func (w *watch[V]) close()         { w.f.Close() }

// Driver runs futures and event sources on one goroutine.
//
// Each step delivers pending source events, then hands every yielded value
// to its consumer and resumes the future. Futures that return are retired
// and their errors collected. A Driver is not safe for concurrent use.
type Driver struct {
	logger  *zap.Logger
	scope   tally.Scope
	tasks   []watcher
	sources []Source
	errs    []error
}

// DriverOption configures a [Driver].
type DriverOption func(*Driver)

// WithLogger sets the logger for task retirement.
func WithLogger(l *zap.Logger) DriverOption {
	return func(d *Driver) { d.logger = l }
}

// WithMetrics sets the scope that task counters and gauges report to.
func WithMetrics(s tally.Scope) DriverOption {
	return func(d *Driver) { d.scope = s }
}

// NewDriver creates a driver with no futures.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		logger: zap.NewNop(),
		scope:  tally.NoopScope,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Watch registers f with d. Each value f yields is passed to consume,
// which may be nil, before f is resumed.
func Watch[V any](d *Driver, f *Future[V], consume func(V)) {
	if f == nil {
		panic("coro: nil future")
	}
	d.tasks = append(d.tasks, &watch[V]{f: f, consume: consume})
	d.scope.Counter("tasks_started").Inc(1)
}

// Attach registers an event source with d.
func (d *Driver) Attach(src Source) {
	if src == nil {
		panic("coro: nil source")
	}
	d.sources = append(d.sources, src)
}

// Len returns the number of futures not yet retired.
func (d *Driver) Len() int {
	return len(d.tasks)
}

// Step makes one pass over sources and futures.
// It reports whether any progress was made.
func (d *Driver) Step() bool {
	progress := false
	for _, src := range d.sources {
		for src.Deliver() {
			progress = true
		}
	}

	// Futures watched during the pass are appended to a fresh d.tasks.
	tasks := d.tasks
	d.tasks = nil
	live := tasks[:0]
	for _, w := range tasks {
		if w.step() {
			progress = true
		}
		if w.done() {
			d.retire(w)
			progress = true
			continue
		}
		live = append(live, w)
	}
	clear(tasks[len(live):])
	d.tasks = append(live, d.tasks...)
	d.scope.Gauge("tasks_live").Update(float64(len(d.tasks)))
	return progress
}

func (d *Driver) retire(w watcher) {
	err := w.rethrow()
	if err == nil {
		d.scope.Counter("tasks_returned").Inc(1)
		d.logger.Debug("task returned", zap.Uint32("serial", w.serial()))
		return
	}
	d.errs = append(d.errs, err)
	d.scope.Counter("tasks_failed").Inc(1)
	d.logger.Warn("task failed", zap.Uint32("serial", w.serial()), zap.Error(err))
}

// Run steps d until every watched future has returned or ctx is done.
// It waits with adaptive backoff while no progress is made.
//
// Run returns ctx's error when ctx ends first, otherwise the errors of
// the failed futures joined with errors.Join.
func (d *Driver) Run(ctx context.Context) error {
	var bo iox.Backoff
	for len(d.tasks) != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Step() {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
	return d.Err()
}

// Err returns the errors of retired futures joined with errors.Join.
func (d *Driver) Err() error {
	return errors.Join(d.errs...)
}

// Close closes every watched future and forgets them.
func (d *Driver) Close() {
	for _, w := range d.tasks {
		w.close()
	}
	clear(d.tasks)
	d.tasks = d.tasks[:0]
	d.scope.Gauge("tasks_live").Update(0)
}
