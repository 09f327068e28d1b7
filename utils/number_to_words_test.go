package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		num  int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{205, "Two Hundred Five"},
		{1500, "One Thousand Five Hundred"},
		{100000, "One Lakh"},
		{2550000, "Twenty Five Lakh Fifty Thousand"},
		{10000000, "One Crore"},
	}
	for _, c := range cases {
		if got := NumberToWords(c.num); got != c.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", c.num, got, c.want)
		}
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{12.50, "Twelve Rupees and Fifty Paise Only"},
		{0.25, "Twenty Five Paise Only"},
		{1200, "One Thousand Two Hundred Rupees Only"},
	}
	for _, c := range cases {
		if got := NumberToCurrencyWords(c.amount); got != c.want {
			t.Errorf("NumberToCurrencyWords(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}
