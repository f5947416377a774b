package main

import "github.com/punyakios/go-kios-client/cmd/kiosctl/cmd"

func main() {
	cmd.Execute()
}
