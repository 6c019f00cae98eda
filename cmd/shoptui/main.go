// Command shoptui browses a storefront product catalog in the terminal.
package main

import "github.com/devnullvoid/shoptui/internal/cli"

func main() {
	cli.Execute()
}
