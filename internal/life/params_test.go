package life

import "testing"

func TestParametersReportRun(t *testing.T) {
	e := newEngine(t, 12, Coord{1, 1}, Coord{2, 1}, Coord{3, 1})
	e.Step()
	snap := e.Parameters()
	checks := map[string]string{
		"size":       "12",
		"density":    "3",
		"generation": "1",
		"population": "3",
		"initial":    "false",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, expected %q", key, p.Value, want)
		}
	}
}

func TestSetIntParameter(t *testing.T) {
	e := newEngine(t, 12)
	if !e.SetIntParameter("density", 7) || e.DensityDivisor() != 7 {
		t.Fatalf("density update rejected, divisor=%d", e.DensityDivisor())
	}
	if e.SetIntParameter("density", MaxDensityDivisor+1) {
		t.Fatal("out of range density accepted")
	}
	if e.SetIntParameter("size", 4) {
		t.Fatal("size must not be adjustable")
	}
	controls := e.ParameterControls()
	if len(controls) != 1 || controls[0].Key != "density" {
		t.Fatalf("controls = %+v", controls)
	}
}
