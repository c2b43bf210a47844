// Command rematch is a thin front end over the matching library.
//
// Modes:
//
//	rematch -r                 read a pattern from stdin, print its postfix form
//	rematch -t                 read a pattern (first line), then match every
//	                           following line, printing 1 or 0 per line
//	rematch -gen [-pkg -name]  read a pattern from stdin, print generated Go source
//	rematch PATTERN [INPUT...] print the postfix form, then true/false per input
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/coregx/rematch"
	"github.com/coregx/rematch/gen"
)

func main() {
	var (
		postfixOnly = flag.Bool("r", false, "print the pattern's postfix form and exit")
		testStdin   = flag.Bool("t", false, "match stdin lines against the pattern on the first line")
		genSource   = flag.Bool("gen", false, "emit generated Go source for the pattern")
		genPkg      = flag.String("pkg", "matchers", "package name for -gen output")
		genName     = flag.String("name", "pattern", "identifier prefix for -gen output")
	)
	flag.Parse()

	if err := run(*postfixOnly, *testStdin, *genSource, *genPkg, *genName, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "rematch:", err)
		os.Exit(1)
	}
}

func run(postfixOnly, testStdin, genSource bool, genPkg, genName string, args []string) error {
	in := bufio.NewScanner(os.Stdin)

	readLine := func() (string, error) {
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("missing pattern on stdin")
		}
		return in.Text(), nil
	}

	switch {
	case postfixOnly:
		pattern, err := readLine()
		if err != nil {
			return err
		}
		postfix, err := rematch.ToPostfix(pattern)
		if err != nil {
			return err
		}
		fmt.Println(postfix)
		return nil

	case genSource:
		pattern, err := readLine()
		if err != nil {
			return err
		}
		src, err := gen.Source(pattern, genPkg, genName)
		if err != nil {
			return err
		}
		fmt.Print(src)
		return nil

	case testStdin:
		pattern, err := readLine()
		if err != nil {
			return err
		}
		re, err := rematch.Compile(pattern)
		if err != nil {
			return err
		}
		for in.Scan() {
			if re.MatchString(in.Text()) {
				fmt.Print("1")
			} else {
				fmt.Print("0")
			}
		}
		fmt.Println()
		return in.Err()

	case len(args) > 0:
		re, err := rematch.Compile(args[0])
		if err != nil {
			return err
		}
		fmt.Println(re.Postfix())
		for _, input := range args[1:] {
			fmt.Printf("%s\t%v\n", input, re.MatchString(input))
		}
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("no mode selected")
	}
}
