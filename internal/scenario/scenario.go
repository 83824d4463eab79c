package scenario

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-fifo/pkg/datastructs/queue"
	"github.com/huynhanx03/go-fifo/pkg/settings"
)

// Report is the outcome of one scenario run.
type Report struct {
	Name     string
	Dequeued []string
	Sums     []int
	Err      error
}

// Ints pushes values into a Summing queue, reports the sum, drains it, then
// pushes more and reports the sum again.
func Ints(log *zap.Logger, values, more []int) Report {
	r := Report{Name: "ints"}
	q := queue.NewSumming[int]()

	for _, v := range values {
		q.Push(v)
	}
	r.Sums = append(r.Sums, q.Sum())
	log.Info("sum of ints", zap.Int("sum", q.Sum()), zap.Int("size", q.Size()))

	for v, ok := q.Dequeue(); ok; v, ok = q.Dequeue() {
		r.Dequeued = append(r.Dequeued, strconv.Itoa(v))
		log.Debug("dequeued int", zap.Int("value", v))
	}

	for _, v := range more {
		q.Push(v)
	}
	r.Sums = append(r.Sums, q.Sum())
	log.Info("sum of new ints", zap.Int("sum", q.Sum()), zap.Int("size", q.Size()))
	return r
}

// Chars pushes chars into a Ring of the given capacity and drains it.
// An overflow stops the insertion and is reported in Err; whatever did fit is
// still drained.
func Chars(log *zap.Logger, capacity int, chars string) Report {
	r := Report{Name: "chars"}
	q := queue.NewRing(capacity)

	for i := 0; i < len(chars); i++ {
		q.Push(chars[i])
	}
	if err := q.Err(); err != nil {
		r.Err = err
		log.Warn("char queue overflow", zap.Int("capacity", q.Cap()), zap.Error(err))
	}

	for c, ok := q.Dequeue(); ok; c, ok = q.Dequeue() {
		r.Dequeued = append(r.Dequeued, string(rune(c)))
		log.Debug("dequeued char", zap.String("value", string(rune(c))))
	}
	return r
}

// Texts pushes texts into a TextQueue and drains it. Every dequeued value is
// a fresh copy owned by the scenario.
func Texts(log *zap.Logger, texts []string) Report {
	r := Report{Name: "texts"}
	q := queue.NewTextQueue()

	for _, s := range texts {
		q.PushString(s)
	}
	for t, ok := q.Dequeue(); ok; t, ok = q.Dequeue() {
		r.Dequeued = append(r.Dequeued, t.String())
		log.Debug("dequeued string", zap.String("value", t.String()))
	}
	return r
}

// Shapes queues n circles by reference and draws each one as it comes out.
// The circles outlive the queue; it only carries their pointers.
// A negative n queues nothing.
func Shapes(log *zap.Logger, n int) Report {
	r := Report{Name: "shapes"}

	n = max(n, 0)
	circles := make([]Circle, n)
	q := queue.NewLinked[Drawer]()
	for i := range circles {
		circles[i].ID = i + 1
		q.Push(&circles[i])
	}

	for d, ok := q.Dequeue(); ok; d, ok = q.Dequeue() {
		r.Dequeued = append(r.Dequeued, d.Draw())
		log.Debug("drew shape", zap.String("shape", d.Draw()))
	}
	return r
}

// RunAll runs every scenario from cfg concurrently and returns their reports
// in a fixed order: ints, chars, texts, shapes. Each scenario owns its queue.
func RunAll(ctx context.Context, log *zap.Logger, cfg settings.Queue) ([]Report, error) {
	runs := []func() Report{
		func() Report { return Ints(log.Named("ints"), cfg.Numbers, cfg.MoreNumbers) },
		func() Report { return Chars(log.Named("chars"), cfg.RingCapacity, cfg.Chars) },
		func() Report { return Texts(log.Named("texts"), cfg.Texts) },
		func() Report { return Shapes(log.Named("shapes"), cfg.Shapes) },
	}

	reports := make([]Report, len(runs))
	g, ctx := errgroup.WithContext(ctx)
	for i, run := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
