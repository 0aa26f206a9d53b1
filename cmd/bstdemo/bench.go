package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type benchOpts struct {
	n           int
	skewLimit   int
	seed        int64
	metricsAddr string
}

type benchMetrics struct {
	height  *prometheus.GaugeVec
	size    *prometheus.GaugeVec
	insert  *prometheus.GaugeVec
	ops     *prometheus.CounterVec
	balance *prometheus.GaugeVec
}

func newBenchMetrics(reg prometheus.Registerer) *benchMetrics {
	labels := []string{"impl", "order"}
	m := &benchMetrics{
		height: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bst_tree_height", Help: "Height of the tree after all inserts.",
		}, labels),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bst_tree_size", Help: "Number of keys in the tree.",
		}, labels),
		insert: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bst_insert_seconds", Help: "Time taken to insert every key.",
		}, labels),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bst_ops_total", Help: "Tree operations performed.",
		}, append(labels, "op")),
		balance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "bst_tree_balanced", Help: "1 if every node's subtrees differ in height by at most one.",
		}, labels),
	}
	reg.MustRegister(m.height, m.size, m.insert, m.ops, m.balance)
	return m
}

type benchResult struct {
	impl, order string
	n           int
	height      int
	balanced    bool
	insert      time.Duration
	query       time.Duration
}

func (a *app) benchCmd() *cobra.Command {
	o := &benchOpts{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare tree shape and speed across insertion orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.n < 1 {
				return fmt.Errorf("--n must be positive, got %d", o.n)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.bench(ctx, cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.n, "n", 100_000, "number of keys")
	f.IntVar(&o.skewLimit, "skew-limit", 4096, "cap on keys for the ascending order, whose cost is quadratic")
	f.Int64Var(&o.seed, "seed", 1, "seed of the random order")
	f.StringVar(&o.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address until interrupted")
	return cmd
}

func (a *app) bench(ctx context.Context, w io.Writer, o *benchOpts) error {
	reg := prometheus.NewRegistry()
	m := newBenchMetrics(reg)

	sorted := make([]int, o.n)
	for i := range sorted {
		sorted[i] = i
	}
	orders := map[string][]int{
		"random":       rand.New(rand.NewSource(o.seed)).Perm(o.n),
		"ascending":    sorted[:min(o.n, o.skewLimit)],
		"median-first": medianFirst(sorted),
	}
	impls := map[string]func(int) tree{
		"pointer": func(int) tree { return Trees.New[int]() },
		"arena":   func(hint int) tree { return Trees.NewArr[int, uint32](uint32(hint)) },
	}

	var mu sync.Mutex
	var results []benchResult
	g, gctx := errgroup.WithContext(ctx)
	for impl, mk := range impls {
		for order, keys := range orders {
			g.Go(func() error {
				r, err := runOne(gctx, impl, order, mk(len(keys)), keys, m)
				if err != nil {
					return err
				}
				a.log.Debug().Str("impl", impl).Str("order", order).Dur("insert", r.insert).Msg("run finished")
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slices.SortFunc(results, func(x, y benchResult) int {
		if c := cmp.Compare(x.order, y.order); c != 0 {
			return c
		}
		return cmp.Compare(x.impl, y.impl)
	})
	fmt.Fprintf(w, "%-13s %-8s %10s %8s %9s %12s %12s\n", "order", "impl", "keys", "height", "balanced", "insert", "query")
	for _, r := range results {
		fmt.Fprintf(w, "%-13s %-8s %10s %8s %9v %12s %12s\n", r.order, r.impl, humanize.Comma(int64(r.n)),
			humanize.Comma(int64(r.height)), r.balanced, r.insert.Round(time.Microsecond), r.query.Round(time.Microsecond))
	}

	if o.metricsAddr == "" {
		return nil
	}
	return a.serveMetrics(ctx, o.metricsAddr, reg)
}

// runOne inserts keys into t in order, then runs a fixed mix of queries.
func runOne(ctx context.Context, impl, order string, t tree, keys []int, m *benchMetrics) (benchResult, error) {
	r := benchResult{impl: impl, order: order, n: len(keys)}
	start := time.Now()
	for i, k := range keys {
		if i%4096 == 0 && ctx.Err() != nil {
			return r, ctx.Err()
		}
		t.Insert(k)
	}
	r.insert = time.Since(start)
	r.height, r.balanced = t.Height(), t.IsBalanced()

	start = time.Now()
	queries := max(len(keys)/100, 1)
	for i := range queries {
		k := keys[(i*7919)%len(keys)]
		t.Search(k)
		t.RangeSum(k, k+100)
		if _, err := t.KthSmallest(uint(i%len(keys)) + 1); err != nil {
			return r, err
		}
	}
	r.query = time.Since(start)

	labels := prometheus.Labels{"impl": impl, "order": order}
	m.height.With(labels).Set(float64(r.height))
	m.size.With(labels).Set(float64(t.Size()))
	m.insert.With(labels).Set(r.insert.Seconds())
	if r.balanced {
		m.balance.With(labels).Set(1)
	} else {
		m.balance.With(labels).Set(0)
	}
	m.ops.WithLabelValues(impl, order, "insert").Add(float64(len(keys)))
	m.ops.WithLabelValues(impl, order, "query").Add(float64(3 * queries))
	return r, nil
}

func (a *app) serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	srv := &http.Server{Addr: addr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Error().Err(err).Msg("metrics server shutdown")
		}
	}()
	a.log.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
