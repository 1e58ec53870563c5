// Command dumpinfo prints the parsed terminfo description for a terminal
// name (or $TERM if none is given): every set boolean, number, and
// string capability by name, plus extended capabilities.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"zgo.at/tvis"
	"zgo.at/tvis/terminfo"
)

func main() {
	raw := pflag.BoolP("raw", "r", false, "show string capabilities Go-quoted instead of in \\E/octal notation")
	pflag.Parse()

	name := os.Getenv("TERM")
	if pflag.NArg() > 0 {
		name = pflag.Arg(0)
	}

	desc, err := terminfo.Find(name)
	if err != nil {
		tvis.Fatalf("looking up %q: %s", name, err)
	}

	fmt.Printf("%s (%s)\n", desc.Name(), joinNames(desc.Names()))

	fmt.Println("\nBooleans:")
	for id := 0; id < terminfo.NumBools; id++ {
		if desc.LookupBool(id) {
			short, _ := terminfo.BooleanName(id)
			fmt.Printf("  %s\n", short)
		}
	}

	fmt.Println("\nNumbers:")
	for id := 0; id < terminfo.NumNumbers; id++ {
		if v := desc.LookupNum(id); v != 0xFFFF {
			short, _ := terminfo.NumberName(id)
			fmt.Printf("  %-12s %d\n", short, v)
		}
	}

	fmt.Println("\nStrings:")
	for id := 0; id < terminfo.NumStrings; id++ {
		if !desc.HasStr(id) {
			continue
		}
		v := desc.LookupStr(id)
		short, _ := terminfo.StringName(id)
		if *raw {
			fmt.Printf("  %-12s %q\n", short, v)
		} else {
			fmt.Printf("  %-12s %s\n", short, escapeVisible(v))
		}
	}

	if ext := desc.ExtCaps(); len(ext) > 0 {
		fmt.Println("\nExtended:")
		for _, c := range ext {
			switch c.Kind {
			case terminfo.ExtBool:
				fmt.Printf("  %-12s bool   %t\n", c.Name, c.Bool)
			case terminfo.ExtNumber:
				fmt.Printf("  %-12s number %d\n", c.Name, c.Num)
			case terminfo.ExtString:
				fmt.Printf("  %-12s string %q\n", c.Name, c.Str)
			}
		}
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "|"
		}
		out += n
	}
	return out
}

func escapeVisible(b []byte) string {
	out := make([]byte, 0, len(b)+4)
	for _, c := range b {
		if c == 0x1b {
			out = append(out, []byte("\\E")...)
			continue
		}
		if c < 0x20 || c == 0x7f {
			out = append(out, []byte(fmt.Sprintf("\\%03o", c))...)
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
