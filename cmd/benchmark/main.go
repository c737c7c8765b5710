package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/synthparty/entity"
	"github.com/delaneyj/synthparty/stream"
	"github.com/delaneyj/synthparty/synth"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkNotify(true)
	benchmarkActivate(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

// fanoutFixture builds one entity carrying w stored properties and a
// table with one derived key per stored property.
func fanoutFixture(w int) (*entity.Registry, *entity.Entity, synth.Table) {
	reg := entity.NewRegistry()
	props := map[string]any{}
	for i := 0; i < w; i++ {
		props[fmt.Sprintf("p%d", i)] = i
	}
	e := reg.New(props)

	regs := synth.Table{}
	for i := 0; i < w; i++ {
		key := fmt.Sprintf("p%d", i)
		r, err := synth.NewRegistration(func(ent synth.Observable) (any, error) {
			return ent.Get(key), nil
		}, key)
		if err != nil {
			log.Fatal(err)
		}
		regs[fmt.Sprintf("d%d", i)] = r
	}
	return reg, e, regs
}

func benchmarkNotify(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Notification fan-out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			_, e, regs := fanoutFixture(w)
			v := synth.NewView(e, regs)

			delivered := 0
			stops := make([]func() error, 0, h)
			for i := 0; i < h; i++ {
				stops = append(stops, v.Changes().Listen(func(batch []stream.Record) {
					delivered++
				}, nil, nil))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				e.Set("p0", i)
				tach.AddTime(time.Since(start))
			}

			for _, stop := range stops {
				if err := stop(); err != nil {
					log.Fatal(err)
				}
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("notify: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkActivate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("View activation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		_, e, regs := fanoutFixture(w)
		v := synth.NewView(e, regs)

		// Each cycle walks Idle -> Active -> Idle, so every declared
		// dependency is subscribed and canceled once per iteration.
		for i := 0; i < iters; i++ {
			start := time.Now()
			stop := v.Changes().Listen(func(batch []stream.Record) {}, nil, nil)
			if err := stop(); err != nil {
				log.Fatal(err)
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("activate: %d deps", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
