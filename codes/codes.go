package codes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Group numbers are a single decimal digit, category numbers top out at the
// 99 bucket. Past those bounds there is nothing sensible to hand back.
var ErrLimitExceeded = errors.New("numbering limit exceeded")

// NextGroupNumber returns the next free group number given every group
// number currently in use. Group numbers run 1..9.
func NextGroupNumber(existing []int) (int, error) {
	max := 0
	for _, n := range existing {
		if n > max {
			max = n
		}
	}
	next := max + 1
	if next > 9 {
		return 0, ErrLimitExceeded
	}
	return next, nil
}

// NextCategoryNumber returns the next category number for a group. The first
// category of group G is G*10+1 (group 3 -> 31). Within a bucket the number
// simply increments; when the last digit hits 9 the tens bucket advances and
// the sequence restarts at 1 (39 -> 41).
func NextCategoryNumber(groupNumber int, existing []int) (int, error) {
	if groupNumber <= 0 {
		return 0, fmt.Errorf("invalid group number %d", groupNumber)
	}
	if len(existing) == 0 {
		return groupNumber*10 + 1, nil
	}

	highest := existing[0]
	for _, n := range existing[1:] {
		if n > highest {
			highest = n
		}
	}

	if highest%10 == 9 {
		bucket := highest/10 + 1
		if bucket > 99 {
			return 0, ErrLimitExceeded
		}
		return bucket*10 + 1, nil
	}
	return highest + 1, nil
}

// NextItemCode returns the next item code for a category: the category
// number followed by a two-digit sequence. Codes that are the wrong length
// or carry a different prefix are ignored. A full (99) or unparsable suffix
// wraps the sequence back to 01.
func NextItemCode(categoryNumber string, existing []string) string {
	expectedLen := len(categoryNumber) + 2

	maxSuffix := -1
	for _, code := range existing {
		if len(code) != expectedLen || !strings.HasPrefix(code, categoryNumber) {
			continue
		}
		suffix, err := strconv.Atoi(code[len(categoryNumber):])
		if err != nil {
			continue
		}
		if suffix > maxSuffix {
			maxSuffix = suffix
		}
	}

	if maxSuffix < 0 || maxSuffix >= 99 {
		return categoryNumber + "01"
	}
	return fmt.Sprintf("%s%02d", categoryNumber, maxSuffix+1)
}
