package analytics

import "testing"

func TestNormalizeProductName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chocolate Cake", "chocolate cake"},
		{"  Chocolate   Cake  ", "chocolate cake"},
		{"COOKIE", "cookie"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeProductName(c.in); got != c.want {
			t.Fatalf("NormalizeProductName(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeProductNameIdempotent(t *testing.T) {
	inputs := []string{"Chocolate Cake", "  croissant ", "Vanilla  Twist", "x"}
	for _, in := range inputs {
		once := NormalizeProductName(in)
		twice := NormalizeProductName(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"dark chocolate tart", "Chocolate"},
		{"butter croissant", "Pastry"},
		{"carrot cake", "Cake"},
		{"oat cookie", "Cookie"},
		{"lemonade", "Other"},
	}
	for _, c := range cases {
		id := NewProductIdentity(c.name)
		if id.Category != c.want {
			t.Fatalf("category of %q = %q; want %q", c.name, id.Category, c.want)
		}
	}
}

func TestRestrictionTable(t *testing.T) {
	id := NewProductIdentity("ChocolateOnly")
	if !id.HasRestriction(OnlyNext) {
		t.Fatalf("expected ChocolateOnly to carry the next-only restriction")
	}

	spaced := NewProductIdentity("Chocolate Only")
	if !spaced.HasRestriction(OnlyNext) {
		t.Fatalf("expected spacing-insensitive restriction match")
	}

	special := NewProductIdentity("Coffemania Special")
	if !special.HasRestriction(OnlyCoffemania) {
		t.Fatalf("expected Coffemania Special to carry the coffemania-only restriction")
	}

	plain := NewProductIdentity("Carrot Cake")
	if len(plain.Restrictions) != 0 {
		t.Fatalf("expected no restrictions for Carrot Cake, got %v", plain.Restrictions)
	}
}
