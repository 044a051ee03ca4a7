package main

import "btcrpc/cmd/btcrpc-cli/cmd"

func main() {
	cmd.Execute()
}
