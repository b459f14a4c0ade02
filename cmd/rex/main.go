// Command rex is the command-line driver for the rex regex engine (spec
// §6). It takes exactly two positional arguments, a pattern and an input
// string, and reports the first match together with its capture groups.
package main

import (
	"fmt"
	"os"

	"github.com/rexcore/rex"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: rex <pattern> <input>")
		os.Exit(1)
	}
	pattern, input := os.Args[1], os.Args[2]

	re, err := rex.Compile(pattern)
	if err != nil {
		fmt.Printf("ERROR:%s\n", err)
		return
	}

	loc := re.FindStringSubmatchIndex(input)
	if loc == nil {
		fmt.Println("NO_MATCH")
		return
	}

	runes := []rune(input)
	fmt.Printf("MATCH:%s\n", string(runes[loc[0]:loc[1]]))
	for i := 1; i <= re.NumSubexp(); i++ {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			fmt.Printf("GROUP %d:\n", i)
			continue
		}
		fmt.Printf("GROUP %d:%s\n", i, string(runes[s:e]))
	}
}
