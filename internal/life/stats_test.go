package life

import "testing"

func TestStatsTrackBlinker(t *testing.T) {
	e := newEngine(t, 10, Coord{3, 3}, Coord{4, 3}, Coord{5, 3})
	e.Snapshot()
	e.Step()
	e.Step()
	st := e.Stats()
	if st.Generations != 2 || st.Births != 4 || st.Deaths != 4 || st.Population != 3 {
		t.Fatalf("stats = %+v", st)
	}

	e.Restore()
	if st := e.Stats(); st != (Stats{Population: 3}) {
		t.Fatalf("stats after restore = %+v", st)
	}
}

func TestStatsResetOnSeedAndClear(t *testing.T) {
	e := newEngine(t, 10, Coord{1, 1})
	e.Step()
	e.SeedRandom(constSource(1))
	if st := e.Stats(); st.Generations != 0 || st.Population != 49 {
		t.Fatalf("stats after seed = %+v", st)
	}
	e.Clear()
	if st := e.Stats(); st != (Stats{}) {
		t.Fatalf("stats after clear = %+v", st)
	}
}
