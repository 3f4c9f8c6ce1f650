package main

import (
	"context"
	"testing"

	"torus-life/internal/app"
)

func TestSurveyDeterministic(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Size = 24
	a, err := survey(context.Background(), cfg, 4, 40, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := survey(context.Background(), cfg, 4, 40, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run %d differs: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].seed != cfg.Seed+int64(i) {
			t.Fatalf("run %d seed = %d", i, a[i].seed)
		}
		if a[i].stats.Generations != 40 {
			t.Fatalf("run %d generations = %d", i, a[i].stats.Generations)
		}
	}
}

func TestSurveyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := survey(ctx, app.NewConfig(), 2, 10, 1); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestSimulateEmptyGridSettles(t *testing.T) {
	res, err := simulate(context.Background(), 3, 0, 1, 40)
	if err != nil {
		t.Fatal(err)
	}
	if res.initial != 0 || res.stats.Population != 0 || res.settled != 0 {
		t.Fatalf("empty run = %+v", res)
	}
}
