package main

import "price-history-viewer/internal/cli"

func main() {
	cli.Execute()
}
