package analytics

import "testing"

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{"dot string", "5.5", 5.5, true},
		{"comma string", "5,5", 5.5, true},
		{"integer string", "5", 5, true},
		{"padded string", " 7,25 ", 7.25, true},
		{"float value", 12.5, 12.5, true},
		{"int value", 3, 3, true},
		{"zero", "0", 0, false},
		{"negative", "-2", 0, false},
		{"garbage", "five", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, c := range cases {
		got, ok := ParseQuantity(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: ParseQuantity(%v) = (%v, %v); want (%v, %v)", c.name, c.in, got, ok, c.want, c.ok)
		}
	}
}
