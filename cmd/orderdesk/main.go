package main

import "github.com/nfrund/orderdesk/cmd/orderdesk/cmd"

func main() {
	cmd.Execute()
}
