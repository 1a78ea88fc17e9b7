package main

import "github.com/theirongolddev/lifetrack/cmd"

func main() {
	cmd.Execute()
}
