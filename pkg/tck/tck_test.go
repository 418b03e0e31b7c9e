package tck_test

import (
	"testing"

	"github.com/repospec/repospec.go/contrib/sqlizer"
	"github.com/repospec/repospec.go/pkg/tck"
)

// The reference SQL renderer must itself pass the conformance checks.
func TestConformance_sqlizer(t *testing.T) {
	r := sqlizer.New("tasks", []string{"owner", "title", "priority", "status", "created"})
	tck.Run(t, r)
}
