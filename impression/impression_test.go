package impression

import "testing"

func TestPresetValues(t *testing.T) {
	cases := []struct {
		name string
		imp  Impression
		want uint8
	}{
		{"normal", Normal, 31},
		{"strong", Strong, 47},
		{"mild", Mild, 15},
		{"strongest", Strongest, 63},
		{"zero value defaults to normal", Impression{}, 31},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.imp.Value(); got != c.want {
				t.Errorf("Value() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestCustomBoundaries(t *testing.T) {
	if got := Custom(0.0).Value(); got != 0 {
		t.Errorf("Custom(0.0).Value() = %d, want 0", got)
	}
	if got := Custom(1.0).Value(); got != 63 {
		t.Errorf("Custom(1.0).Value() = %d, want 63", got)
	}
}

func TestCustomArbitraryRatio(t *testing.T) {
	if got := Custom(0.8).Value(); got != 50 {
		t.Errorf("Custom(0.8).Value() = %d, want 50", got)
	}
}

func TestValueRange(t *testing.T) {
	for _, imp := range []Impression{Normal, Strong, Mild, Strongest, Custom(0.33)} {
		if v := imp.Value(); v > 63 {
			t.Errorf("Value() = %d out of range [0,63]", v)
		}
	}
}
