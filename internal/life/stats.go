package life

// Stats summarises a run since the population was last seeded, loaded,
// cleared or restored.
type Stats struct {
	Generations int
	Births      int
	Deaths      int
	Population  int
}

// Stats returns the current run statistics.
func (e *Engine) Stats() Stats { return e.stats }

func (e *Engine) resetStats() {
	e.stats = Stats{Population: len(e.cells)}
}

func (s *Stats) record(prev, next cellSet) {
	for c := range next {
		if _, ok := prev[c]; !ok {
			s.Births++
		}
	}
	for c := range prev {
		if _, ok := next[c]; !ok {
			s.Deaths++
		}
	}
	s.Generations++
	s.Population = len(next)
}
