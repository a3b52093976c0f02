package realincome

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		in   float64
		cur  string
		want string
	}{
		{1234567.891, "USD", "$1,234,567.89"},
		{0, "USD", "$0.00"},
		{-42.4, "USD", "-$42.40"},
	}
	for _, tc := range testCases {
		if got := M(tc.in, tc.cur).String(); got != tc.want {
			t.Errorf("M(%v, %s).String() = %q, want %q", tc.in, tc.cur, got, tc.want)
		}
	}
}

func TestMoneySub(t *testing.T) {
	got := M(100, "EUR").Sub(M(40, "EUR"))
	if !got.Equal(M(60, "EUR")) {
		t.Errorf("100 - 40 = %v, want 60", got)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(20).String(); got != "20.00%" {
		t.Errorf("String() = %q, want 20.00%%", got)
	}
	if got := Percent(-2.5).SignedString(); got != "-2.50%" {
		t.Errorf("SignedString() = %q, want -2.50%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}

func TestSortItems(t *testing.T) {
	items := []Item{
		{Code: "CHE", Name: "switzerland"},
		{Code: "ARG", Name: "Argentina"},
		{Code: "POL", Name: "Poland"},
	}
	SortItems(items)
	want := []string{"ARG", "POL", "CHE"}
	for i, code := range want {
		if items[i].Code != code {
			t.Errorf("items[%d] = %v, want code %s", i, items[i], code)
		}
	}
}

func TestFindItemFirstWins(t *testing.T) {
	items := []Item{
		{Code: "POL", Name: "Poland"},
		{Code: "POL", Name: "Pologne"},
	}
	it, ok := FindItem(items, "POL")
	if !ok || it.Name != "Poland" {
		t.Errorf("FindItem(POL) = %v, %v, want the first occurrence", it, ok)
	}
	if _, ok := FindItem(items, "XXX"); ok {
		t.Error("FindItem(XXX) found a match, want none")
	}
}
