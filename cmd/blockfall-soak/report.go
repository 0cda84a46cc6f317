package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/blockfall/sched"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	FrameTime time.Duration
	Tick      time.Duration
	Seed      uint64

	// Results
	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Systems       []sched.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats

	// Games
	Games     int
	Rotations int
	Lines     int
	Clears    map[int]int
	Scores    Scores
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Scores summarizes the final score of every finished game.
type Scores struct {
	Count int
	Min   int
	Max   int
	Avg   float64
}

func (s *Scores) Add(scores ...int) {
	if len(scores) == 0 {
		return
	}
	total := s.Avg * float64(s.Count)
	if s.Count == 0 {
		s.Min, s.Max = scores[0], scores[0]
	}
	for _, v := range scores {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += float64(v)
	}
	s.Count += len(scores)
	s.Avg = total / float64(s.Count)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Time:** {{.FrameTime}}
- **Tick Interval:** {{.Tick}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}{{end}}

## Games
- **Finished:** {{.Games}}
- **Rotations:** {{.Rotations}}
- **Lines (current game):** {{.Lines}}
{{range $rows := clearKeys .Clears}}- **{{$rows}}-row clears:** {{index $.Clears $rows}}
{{end}}{{if .Scores.Count}}- **Score:** min {{.Scores.Min}}, max {{.Scores.Max}}, avg {{printf "%.1f" .Scores.Avg}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"clearKeys": func(m map[int]int) []int {
			keys := make([]int, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			return keys
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
