package main

import "github.com/jpretorius/email-gateway/cmd"

func main() {
	cmd.Execute()
}
