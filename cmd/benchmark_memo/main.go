package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/synthparty/entity"
	"github.com/delaneyj/synthparty/synth"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting memo benchmark, please wait...")
	defer log.Print("Finished memo benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:          "small hot",
			entities:      10,
			cycles:        100_000,
			evictEvery:    0, // cache stays warm for the whole run
			expectedSum:   9_000_000,
			directCount:   1_000_000,
			memoizedCount: 10,
		},
		{
			name:          "medium churn",
			entities:      100,
			cycles:        10_000,
			evictEvery:    10,
			expectedSum:   99_000_000,
			directCount:   1_000_000,
			memoizedCount: 100_000,
		},
		{
			name:          "wide cold",
			entities:      1_000,
			cycles:        1_000,
			evictEvery:    1, // every read recomputes, memo is pure overhead
			expectedSum:   999_000_000,
			directCount:   1_000_000,
			memoizedCount: 1_000_000,
		},
		{
			name:          "wide warm",
			entities:      10_000,
			cycles:        100,
			evictEvery:    50,
			expectedSum:   9_999_000_000,
			directCount:   1_000_000,
			memoizedCount: 20_000,
		},
	}

	type results struct {
		sum      int64
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"variant", "entities", "evictEvery",
		"nReads", "test", "time",
		"readRate", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		reg := entity.NewRegistry()
		entities := make([]*entity.Entity, cfg.entities)
		for i := range entities {
			entities[i] = reg.New(map[string]any{"x": int64(i)})
		}

		counter := new(int64)
		compute := func(e synth.Observable) (any, error) {
			*counter++
			return e.Get("x").(int64) * 2, nil
		}

		runDirect := func() int64 {
			var sum int64
			for c := int64(0); c < cfg.cycles; c++ {
				for _, e := range entities {
					v, err := compute(e)
					if err != nil {
						log.Fatal(err)
					}
					sum += v.(int64)
				}
			}
			return sum
		}

		runMemoized := func() int64 {
			memo := synth.NewMemo(compute)
			var sum int64
			for c := int64(0); c < cfg.cycles; c++ {
				if cfg.evictEvery > 0 && c%cfg.evictEvery == 0 {
					for _, e := range entities {
						memo.Evict(e)
					}
				}
				for _, e := range entities {
					v, err := memo.Compute(e)
					if err != nil {
						log.Fatal(err)
					}
					sum += v.(int64)
				}
			}
			return sum
		}

		variants := []struct {
			name          string
			runOnce       func() int64
			expectedCount int64
		}{
			{"direct", runDirect, cfg.directCount},
			{"memoized", runMemoized, cfg.memoizedCount},
		}

		totalReads := cfg.cycles * cfg.entities
		for _, variant := range variants {
			// run once to warm up
			variant.runOnce()

			bestResult := &results{
				duration: time.Hour,
			}
			for i := 0; i < testRepeats; i++ {
				log.Printf("Running '%s' %s, iteration %d/%d %d%%", cfg.name, variant.name, i+1, testRepeats, (i+1)*100/testRepeats)
				*counter = 0
				start := time.Now()
				sum := variant.runOnce()
				duration := time.Since(start)

				if duration < bestResult.duration {
					bestResult.duration = duration
					bestResult.sum = sum
					bestResult.count = *counter
				}
			}

			if bestResult.sum != cfg.expectedSum {
				log.Fatalf("'%s' %s: sum %d, expected %d", cfg.name, variant.name, bestResult.sum, cfg.expectedSum)
			}
			if bestResult.count != variant.expectedCount {
				log.Fatalf("'%s' %s: %d compute calls, expected %d", cfg.name, variant.name, bestResult.count, variant.expectedCount)
			}

			makeTitle := func() string {
				sb := strings.Builder{}
				sb.WriteString(fmt.Sprintf("%d entities x %d cycles", cfg.entities, cfg.cycles))
				if cfg.evictEvery > 0 {
					sb.WriteString(fmt.Sprintf(" evict/%d", cfg.evictEvery))
				}
				return sb.String()
			}

			readRate := float64(totalReads) / (float64(bestResult.duration) / float64(time.Millisecond))

			table.Append([]string{
				variant.name,                       // variant
				fmt.Sprint(cfg.entities),           // entities
				fmt.Sprint(cfg.evictEvery),         // evictEvery
				humanize.Comma(totalReads),         // nReads
				cfg.name,                           // test
				fmt.Sprint(bestResult.duration),    // time
				humanize.Comma(int64(readRate)),    // readRate
				makeTitle(),                        // title
			})
		}
	}
	table.Render() // Send output
}

type benchmarkTestConfig struct {
	name          string // friendly name for the test, should be unique
	entities      int64  // number of live entities sharing the cache
	cycles        int64  // full passes over the entities per run
	evictEvery    int64  // evict the whole cache every this many cycles, 0 never
	expectedSum   int64  // sum of all reads, for verification
	directCount   int64  // compute calls without the memo, for verification
	memoizedCount int64  // compute calls through the memo, for verification
}
