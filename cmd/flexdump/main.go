package main

import "github.com/fluentkit/fluent/cmd/flexdump/commands"

func main() {
	commands.Execute()
}
