package restrict_test

import (
	"fmt"

	"github.com/repospec/repospec.go/pkg/restrict"
)

func ExampleAll() {
	r := restrict.All(
		restrict.Equal("status", "open"),
		restrict.Any(
			restrict.Greater("priority", 3),
			restrict.StartsWith("title", "urgent"),
		),
	)
	fmt.Println(r)
	// Output:
	// (status = 'open') AND ((priority > 3) OR (title LIKE 'urgent%'))
}

func ExampleNot() {
	r := restrict.Not(restrict.Any(
		restrict.IsNull("owner"),
		restrict.Equal("status", "void"),
	))
	fmt.Println(r)
	// Output:
	// NOT ((owner IS NULL) OR (status = 'void'))
}

func ExampleUnrestricted() {
	fmt.Println(restrict.Unrestricted())
	fmt.Println(restrict.Unrestricted().Negate())
	// Output:
	// UNRESTRICTED
	// UNMATCHABLE
}
