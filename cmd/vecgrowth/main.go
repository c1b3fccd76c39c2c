// vecgrowth traces the buffer relocations of the vector growth policies.
//
// # Usage
//
//	vecgrowth [FLAGS]
//
// # Flags
//
//	-n, --count     Number of elements to append (default 100)
//	-w, --width     Counter width in bits: 8, 16, 32 or 64 (default 32)
//	-f, --factor    Growth factor for push (default 1.25)
//	-p, --policy    push, emplace or both (default both)
//	-a, --all       List every append, not only those that relocate
//	-v, --verbose   Log relocations to stderr
//
// # Examples
//
// Compare both policies for 1000 appends:
//
//	vecgrowth -n 1000
//
// Find where a 16-bit counter overflows under push with factor 2:
//
//	vecgrowth -n 70000 -w 16 -f 2 -p push
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
