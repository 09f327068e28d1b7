package codes

import "testing"

func TestNextGroupNumber(t *testing.T) {
	n, err := NextGroupNumber(nil)
	if err != nil || n != 1 {
		t.Fatalf("empty store: got %d, %v", n, err)
	}

	n, err = NextGroupNumber([]int{1, 2, 3})
	if err != nil || n != 4 {
		t.Fatalf("groups 1..3: got %d, %v", n, err)
	}

	// Order of the input must not matter.
	n, err = NextGroupNumber([]int{3, 1, 2})
	if err != nil || n != 4 {
		t.Fatalf("unordered groups: got %d, %v", n, err)
	}

	if _, err = NextGroupNumber([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}); err != ErrLimitExceeded {
		t.Fatalf("groups 1..9: want ErrLimitExceeded, got %v", err)
	}
}

func TestNextCategoryNumber(t *testing.T) {
	n, err := NextCategoryNumber(3, nil)
	if err != nil || n != 31 {
		t.Fatalf("first category of group 3: got %d, %v", n, err)
	}

	n, err = NextCategoryNumber(3, []int{31, 32, 33, 34, 35, 36, 37, 38})
	if err != nil || n != 39 {
		t.Fatalf("categories 31..38: got %d, %v", n, err)
	}

	// Trailing 9 rolls the tens bucket, not the group number.
	n, err = NextCategoryNumber(3, []int{31, 32, 33, 34, 35, 36, 37, 38, 39})
	if err != nil || n != 41 {
		t.Fatalf("categories through 39: got %d, %v", n, err)
	}

	// Rollover from a two-digit bucket.
	n, err = NextCategoryNumber(9, []int{91, 99})
	if err != nil || n != 101 {
		t.Fatalf("bucket past 99: got %d, %v", n, err)
	}

	if _, err = NextCategoryNumber(9, []int{999}); err != ErrLimitExceeded {
		t.Fatalf("bucket past 99 ceiling: want ErrLimitExceeded, got %v", err)
	}

	if _, err = NextCategoryNumber(0, nil); err == nil {
		t.Fatal("group number 0: want error")
	}
}

func TestNextItemCode(t *testing.T) {
	if got := NextItemCode("31", nil); got != "3101" {
		t.Fatalf("first item: got %q", got)
	}

	existing := make([]string, 0, 98)
	for i := 1; i <= 98; i++ {
		existing = append(existing, NextItemCode("31", existing))
	}
	if got := NextItemCode("31", existing); got != "3199" {
		t.Fatalf("items 3101..3198: got %q", got)
	}

	// Sequence 99 wraps back to 01 rather than failing.
	if got := NextItemCode("31", append(existing, "3199")); got != "3101" {
		t.Fatalf("wrap past 99: got %q", got)
	}

	// Wrong length or foreign prefix codes are ignored.
	if got := NextItemCode("31", []string{"310", "31005", "4101", "3102"}); got != "3103" {
		t.Fatalf("filtered codes: got %q", got)
	}

	// Unparsable suffix resets the sequence.
	if got := NextItemCode("31", []string{"31XY"}); got != "3101" {
		t.Fatalf("unparsable suffix: got %q", got)
	}
}
