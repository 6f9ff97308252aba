package main

import "counter-dapp/cmd/counter-cli/cmd"

func main() {
	cmd.Execute()
}
