package rivals

import "testing"

func TestTableIntegrity(t *testing.T) {
	countries := All()
	if len(countries) != 12 {
		t.Fatalf("expected 12 competitors, got %d", len(countries))
	}

	seen := make(map[string]bool)
	for _, c := range countries {
		if len(c.ISO) != 3 {
			t.Errorf("%s: iso code must be 3 letters", c.ISO)
		}
		if seen[c.ISO] {
			t.Errorf("duplicate competitor %s", c.ISO)
		}
		seen[c.ISO] = true
		if c.BaseScore <= 0 || c.BaseScore >= 100 {
			t.Errorf("%s: base score %v outside (0,100)", c.ISO, c.BaseScore)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].BaseScore = -99
	if All()[0].BaseScore == -99 {
		t.Error("mutating All() result leaked into the table")
	}
}

func TestDriftIsDeterministic(t *testing.T) {
	a := NewDrift(7)
	b := NewDrift(7)
	for cycle := 1; cycle <= 10; cycle++ {
		for i := range All() {
			if a.Step(i, cycle, 50) != b.Step(i, cycle, 50) {
				t.Fatalf("seed 7 diverged at competitor %d cycle %d", i, cycle)
			}
		}
	}

	c := NewDrift(8)
	same := true
	for cycle := 1; cycle <= 10 && same; cycle++ {
		if a.Step(0, cycle, 50) != c.Step(0, cycle, 50) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical trajectories")
	}
}

func TestDriftStepStaysClamped(t *testing.T) {
	d := NewDrift(1)
	for cycle := 1; cycle <= 20; cycle++ {
		if got := d.Step(0, cycle, 0.1); got < 0 {
			t.Errorf("cycle %d: score %v below 0", cycle, got)
		}
		if got := d.Step(0, cycle, 99.9); got > 100 {
			t.Errorf("cycle %d: score %v above 100", cycle, got)
		}
	}
}

func TestDriftStepIsBounded(t *testing.T) {
	d := NewDrift(3)
	for cycle := 1; cycle <= 20; cycle++ {
		for i := range All() {
			delta := d.Step(i, cycle, 50) - 50
			if delta < -1.6 || delta > 1.6 {
				t.Errorf("competitor %d cycle %d: delta %v exceeds amplitude", i, cycle, delta)
			}
		}
	}
}
