package pattern_test

import (
	"fmt"

	"github.com/repospec/repospec.go/pkg/pattern"
)

func ExamplePrefix() {
	fmt.Println(pattern.Prefix("Hibernate"))
	// Output:
	// 'Hibernate%'
}

func ExampleLiteral() {
	p := pattern.Literal("100%_done")
	fmt.Println(p.Value())

	unescaped, _ := p.Unescaped()
	fmt.Println(unescaped)
	// Output:
	// 100\%\_done
	// 100%_done
}

func ExampleOfCustom() {
	// '?' matches one character and '*' matches any sequence.
	p := pattern.OfCustom("JHM???F*", '?', '*')
	fmt.Println(p.Value())
	// Output:
	// JHM___F%
}
