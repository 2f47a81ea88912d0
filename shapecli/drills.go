package shapecli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/geoshape/lib/drills"
)

func calcCmd(_ context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to calculate")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 3 {
		return xmain.UsageErrorf("calc must be passed x op y")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return xmain.UsageErrorf("%q is not a number", args[0])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return xmain.UsageErrorf("%q is not a number", args[2])
	}
	res, err := drills.Calculate(x, y, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(ms.Stdout, "%v %s %v = %v\n", x, args[1], y, res)
	return nil
}

func palindromeCmd(_ context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to check palindrome")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 1 {
		return xmain.UsageErrorf("palindrome must be passed exactly one word")
	}
	ok, err := drills.IsPalindrome(args[0])
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(ms.Stdout, "%s is a palindrome\n", args[0])
	} else {
		fmt.Fprintf(ms.Stdout, "%s is not a palindrome\n", args[0])
	}
	return nil
}

func primesCmd(_ context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to list primes")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) == 0 {
		return xmain.UsageErrorf("primes must be passed at least one integer")
	}
	primes, err := drills.ListPrimes(args)
	if err != nil {
		return err
	}
	strs := make([]string, 0, len(primes))
	for _, p := range primes {
		strs = append(strs, strconv.Itoa(p))
	}
	fmt.Fprintf(ms.Stdout, "primes: [%s]\n", strings.Join(strs, " "))
	return nil
}

func anagramsCmd(_ context.Context, ms *xmain.State) (err error) {
	defer xdefer.Errorf(&err, "failed to find anagrams")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) < 2 {
		return xmain.UsageErrorf("anagrams must be passed at least two words")
	}
	words, err := drills.Anagrams(args)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		ms.Log.Info.Printf("no anagrams found")
		return nil
	}
	fmt.Fprintln(ms.Stdout, strings.Join(words, " "))
	return nil
}
