package main

import "github.com/oshokin/alarm-clock/cmd/alarm-server/cmd"

func main() {
	cmd.Execute()
}
