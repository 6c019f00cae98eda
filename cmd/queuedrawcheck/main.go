// Command queuedrawcheck runs the queuedrawcheck analyzer:
//
//	go run ./cmd/queuedrawcheck ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/devnullvoid/shoptui/internal/tools/queuedrawcheck"
)

func main() {
	singlechecker.Main(queuedrawcheck.Analyzer)
}
