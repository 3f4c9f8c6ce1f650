// Package life implements Conway's Game of Life on a square toroidal grid
// using a sparse set of live cells.
package life

import (
	"cmp"
	"slices"

	"torus-life/internal/core"
)

// Coord identifies a grid cell. It is comparable and used as a map key.
type Coord struct {
	X, Y int
}

// neighbors lists the Moore offsets around a cell.
var neighbors = [8]Coord{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// randomInset is the margin left free along the far edges by SeedRandom.
const randomInset = 4

type cellSet map[Coord]struct{}

func (s cellSet) clone() cellSet {
	out := make(cellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Engine owns the live-cell population of a square toroidal grid and evolves
// it under the B3/S23 rule. It is not safe for concurrent use.
type Engine struct {
	mapSize        int
	densityDivisor int

	cells     cellSet
	initial   cellSet
	isInitial bool
	// stray is set while cells may lie outside [0, size), as after Center.
	stray bool

	stats Stats
}

// New returns an engine with an empty live set. densityDivisor controls the
// sparsity of SeedRandom; negative values are treated as 0.
func New(mapSize, densityDivisor int) (*Engine, error) {
	if mapSize <= 0 {
		return nil, ErrInvalidSize
	}
	if densityDivisor < 0 {
		densityDivisor = 0
	}
	return &Engine{
		mapSize:        mapSize,
		densityDivisor: densityDivisor,
		cells:          cellSet{},
		initial:        cellSet{},
		isInitial:      true,
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// MapSize returns the side length of the grid.
func (e *Engine) MapSize() int { return e.mapSize }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.mapSize, H: e.mapSize} }

// DensityDivisor returns the random seeding sparsity.
func (e *Engine) DensityDivisor() int { return e.densityDivisor }

// SetDensityDivisor changes the random seeding sparsity for later seeds.
func (e *Engine) SetDensityDivisor(n int) {
	if n < 0 {
		n = 0
	}
	e.densityDivisor = n
}

// IsInitial reports whether the live set still matches the last snapshot,
// with no Step applied since.
func (e *Engine) IsInitial() bool { return e.isInitial }

// Len returns the number of live cells.
func (e *Engine) Len() int { return len(e.cells) }

// Contains reports whether c is live. No wrapping is applied.
func (e *Engine) Contains(c Coord) bool {
	_, ok := e.cells[c]
	return ok
}

// Cells returns a copy of the live set ordered row by row.
func (e *Engine) Cells() []Coord {
	out := make([]Coord, 0, len(e.cells))
	for c := range e.cells {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// Each calls fn for every live cell in unspecified order until fn returns
// false. fn must not mutate the engine.
func (e *Engine) Each(fn func(Coord) bool) {
	for c := range e.cells {
		if !fn(c) {
			return
		}
	}
}

// Rasterize writes the live set into dst as 0/1 values. Coordinates outside
// the grid, as left behind by Center, are wrapped for display.
func (e *Engine) Rasterize(dst *core.ByteGrid) {
	dst.Clear()
	for c := range e.cells {
		dst.Set(c.X, c.Y, 1)
	}
}

// Toggle flips the state of a single cell. The live set then differs from
// the snapshot, so IsInitial reports false; Restore still returns to it.
func (e *Engine) Toggle(c Coord) {
	if _, ok := e.cells[c]; ok {
		delete(e.cells, c)
	} else {
		e.cells[c] = struct{}{}
		if !e.inGrid(c) {
			e.stray = true
		}
	}
	e.isInitial = false
	e.stats.Population = len(e.cells)
}

// Clear empties the live set.
func (e *Engine) Clear() {
	e.setCells(cellSet{})
	e.resetStats()
}

func (e *Engine) inGrid(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < e.mapSize && c.Y < e.mapSize
}

func (e *Engine) setCells(cs cellSet) {
	e.cells = cs
	e.stray = false
	for c := range cs {
		if !e.inGrid(c) {
			e.stray = true
			return
		}
	}
}

// normalized returns the live set with every cell passed through wrap.
func (e *Engine) normalized() cellSet {
	if !e.stray {
		return e.cells
	}
	out := make(cellSet, len(e.cells))
	for c := range e.cells {
		out[e.wrapped(c)] = struct{}{}
	}
	return out
}

// SeedRandom replaces the live set with random cells drawn from src. Every
// cell in [0, size-4] on both axes becomes live with probability
// 1/(divisor+1). The snapshot is left alone.
func (e *Engine) SeedRandom(src core.IntSource) {
	e.setCells(cellSet{})
	limit := e.mapSize - randomInset
	for y := 0; y <= limit; y++ {
		for x := 0; x <= limit; x++ {
			if src.IntN(e.densityDivisor+1) == 1 {
				e.cells[Coord{x, y}] = struct{}{}
			}
		}
	}
	e.resetStats()
}

// Snapshot records the current live set so Restore can return to it.
func (e *Engine) Snapshot() {
	e.initial = e.cells.clone()
	e.isInitial = true
}

// Restore replaces the live set with the last snapshot.
func (e *Engine) Restore() {
	e.setCells(e.initial.clone())
	e.isInitial = true
	e.resetStats()
}

// wrap maps a coordinate that overflowed the axis by one cell back onto it.
// Larger overflows are not handled: callers only ever pass c+-1 for c already
// inside [0, size), or a freshly centered coordinate. Supporting arbitrary
// offsets needs ((c % size) + size) % size instead.
func wrap(c, size int) int {
	switch {
	case c < 0:
		return size - 1
	case c >= size:
		return 0
	default:
		return c
	}
}

func (e *Engine) wrapped(c Coord) Coord {
	return Coord{wrap(c.X, e.mapSize), wrap(c.Y, e.mapSize)}
}

// NeighborCount counts the live cells in the wrapped Moore neighbourhood of c.
// c itself is wrapped first, so (-1, y) and (size-1, y) give the same count.
// Live cells stored outside the grid count at their wrapped position.
func (e *Engine) NeighborCount(c Coord) int {
	return e.countIn(e.normalized(), c)
}

func (e *Engine) countIn(cells cellSet, c Coord) int {
	c = e.wrapped(c)
	n := 0
	for _, d := range neighbors {
		if _, ok := cells[e.wrapped(Coord{c.X + d.X, c.Y + d.Y})]; ok {
			n++
		}
	}
	return n
}

// Step advances the population by one generation. Cells left outside the grid
// are wrapped back first. Only live cells and their wrapped neighbours are
// evaluated; everything else stays dead.
func (e *Engine) Step() {
	cur := e.normalized()
	next := make(cellSet, len(cur))
	visited := make(map[Coord]struct{}, len(cur)*9)
	eval := func(c Coord) {
		if _, seen := visited[c]; seen {
			return
		}
		visited[c] = struct{}{}
		_, live := cur[c]
		if alive(e.countIn(cur, c), live) {
			next[c] = struct{}{}
		}
	}
	for c := range cur {
		eval(c)
		for _, d := range neighbors {
			eval(e.wrapped(Coord{c.X + d.X, c.Y + d.Y}))
		}
	}
	e.stats.record(cur, next)
	e.cells = next
	e.stray = false
	e.isInitial = false
}

func alive(neighbors int, live bool) bool {
	return neighbors == 3 || (neighbors == 2 && live)
}

// BoundingBox returns the smallest and largest coordinates on each axis. ok
// is false when there are no live cells.
func (e *Engine) BoundingBox() (min, max Coord, ok bool) {
	for c := range e.cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}

// Center translates the population so the middle of its bounding box sits on
// (size/2, size/2). Translated cells are not wrapped.
func (e *Engine) Center() {
	min, max, ok := e.BoundingBox()
	if !ok {
		return
	}
	half := e.mapSize / 2
	dx := half - (min.X + (max.X-min.X)/2)
	dy := half - (min.Y + (max.Y-min.Y)/2)
	if dx == 0 && dy == 0 {
		return
	}
	moved := make(cellSet, len(e.cells))
	for c := range e.cells {
		moved[Coord{c.X + dx, c.Y + dy}] = struct{}{}
	}
	e.setCells(moved)
}

func sortCoords(cs []Coord) {
	slices.SortFunc(cs, func(a, b Coord) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
