// Package drills holds the small exercises that ship next to the shapes:
// a four-operation calculator, a palindrome check, a prime filter and an anagram finder.
package drills

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"oss.terrastruct.com/util-go/go2"
)

var ErrDivisionByZero = errors.New("division by zero")

// Calculate applies op, one of + - * /, to x and y
func Calculate(x, y float64, op string) (float64, error) {
	switch op {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	default:
		return 0, fmt.Errorf("invalid operator %q, expected one of + - * /", op)
	}
}

// IsPalindrome ignores case
func IsPalindrome(word string) (bool, error) {
	if word == "" {
		return false, errors.New("word cannot be empty")
	}
	runes := []rune(strings.ToLower(word))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false, nil
		}
	}
	return true, nil
}

// ListPrimes parses values as integers and returns the primes among them, in input order.
func ListPrimes(values []string) ([]int, error) {
	ns := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid integer", v)
		}
		ns = append(ns, n)
	}
	return go2.Filter(ns, isPrime), nil
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Anagrams returns every lowercased word that shares its letters with at least one other word.
// The result is sorted and has no duplicates.
func Anagrams(words []string) ([]string, error) {
	groups := make(map[string][]string)
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("word %d cannot be empty", i)
		}
		w = strings.ToLower(w)
		key := sortedRunes(w)
		groups[key] = append(groups[key], w)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		for _, w := range group {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out, nil
}

func sortedRunes(s string) string {
	rs := []rune(s)
	sort.Slice(rs, func(i, j int) bool {
		return rs[i] < rs[j]
	})
	return string(rs)
}
