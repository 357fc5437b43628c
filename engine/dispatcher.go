package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	// ErrDuplicateSystem is returned when two systems share a name
	ErrDuplicateSystem = errors.New("duplicate system name")

	// ErrUnknownDependency is returned when a system depends on a name never added
	ErrUnknownDependency = errors.New("unknown system dependency")

	// ErrDependencyCycle is returned when dependency edges form a cycle
	ErrDependencyCycle = errors.New("system dependency cycle")
)

type systemNode struct {
	system System
	deps   []string
}

// DispatcherBuilder collects systems and their dependency edges
type DispatcherBuilder struct {
	nodes []systemNode
}

// NewDispatcherBuilder creates an empty builder
func NewDispatcherBuilder() *DispatcherBuilder {
	return &DispatcherBuilder{}
}

// Add registers a system that must run after every system named in deps
func (b *DispatcherBuilder) Add(system System, deps ...string) *DispatcherBuilder {
	b.nodes = append(b.nodes, systemNode{system: system, deps: append([]string(nil), deps...)})
	return b
}

// Build groups systems into stages: every system runs in a later stage than all its dependencies
// Stage members are ordered by Priority, then Name
func (b *DispatcherBuilder) Build(parallel bool) (*Dispatcher, error) {
	byName := make(map[string]int, len(b.nodes))
	for i, n := range b.nodes {
		name := n.system.Name()
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSystem, name)
		}
		byName[name] = i
	}

	indegree := make([]int, len(b.nodes))
	dependents := make([][]int, len(b.nodes))
	for i, n := range b.nodes {
		for _, dep := range n.deps {
			j, ok := byName[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %q requires %q", ErrUnknownDependency, n.system.Name(), dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	// Kahn's algorithm, one stage per frontier
	var stages [][]System
	frontier := make([]int, 0, len(b.nodes))
	for i, d := range indegree {
		if d == 0 {
			frontier = append(frontier, i)
		}
	}

	placed := 0
	for len(frontier) > 0 {
		stage := make([]System, 0, len(frontier))
		var next []int
		for _, i := range frontier {
			stage = append(stage, b.nodes[i].system)
			for _, k := range dependents[i] {
				indegree[k]--
				if indegree[k] == 0 {
					next = append(next, k)
				}
			}
		}
		sort.SliceStable(stage, func(a, c int) bool {
			if stage[a].Priority() != stage[c].Priority() {
				return stage[a].Priority() < stage[c].Priority()
			}
			return stage[a].Name() < stage[c].Name()
		})
		stages = append(stages, stage)
		placed += len(frontier)
		frontier = next
	}

	if placed != len(b.nodes) {
		var stuck []string
		for i, d := range indegree {
			if d > 0 {
				stuck = append(stuck, b.nodes[i].system.Name())
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("%w: %v", ErrDependencyCycle, stuck)
	}

	return &Dispatcher{stages: stages, parallel: parallel}, nil
}

// Dispatcher runs staged systems once per frame
// Systems in one stage have no edges between them and may run concurrently
type Dispatcher struct {
	stages   [][]System
	parallel bool
}

// Stages returns a copy of the stage layout
func (d *Dispatcher) Stages() [][]System {
	out := make([][]System, len(d.stages))
	for i, s := range d.stages {
		out[i] = append([]System(nil), s...)
	}
	return out
}

// Order returns every system flattened in sequential execution order
func (d *Dispatcher) Order() []System {
	var out []System
	for _, s := range d.stages {
		out = append(out, s...)
	}
	return out
}

// Dispatch runs every stage to completion, in order
func (d *Dispatcher) Dispatch(dt time.Duration) {
	for _, stage := range d.stages {
		if !d.parallel || len(stage) == 1 {
			for _, s := range stage {
				s.Update(dt)
			}
			continue
		}

		var wg sync.WaitGroup
		wg.Add(len(stage))
		for _, s := range stage {
			go func(s System) {
				defer wg.Done()
				s.Update(dt)
			}(s)
		}
		wg.Wait()
	}
}
