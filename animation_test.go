package scrollreel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFaderTo(t *testing.T) {
	f := NewFader(1)
	f.To(0, 0.3, ease.Linear)
	if f.Done {
		t.Fatal("Done right after To")
	}
	f.Update(0.15)
	if math.Abs(f.Value-0.5) > 1e-3 {
		t.Errorf("Value at half time = %v, want 0.5", f.Value)
	}
	f.Update(0.2)
	if !f.Done || f.Value != 0 {
		t.Errorf("after duration: Value %v Done %v, want 0 true", f.Value, f.Done)
	}
}

func TestFaderSetCancels(t *testing.T) {
	f := NewFader(0)
	f.To(1, 1, ease.OutQuad)
	f.Update(0.1)
	f.Set(0.25)
	f.Update(1)
	if f.Value != 0.25 || !f.Done {
		t.Errorf("Value %v Done %v, want 0.25 true", f.Value, f.Done)
	}
}

func TestFaderZeroDuration(t *testing.T) {
	f := NewFader(1)
	f.To(0, 0, ease.OutQuad)
	if f.Value != 0 || !f.Done {
		t.Errorf("Value %v Done %v, want 0 true", f.Value, f.Done)
	}
}
