package main

import "github.com/galaxy-dev/galaxy-profile/cmd"

func main() {
	cmd.Execute()
}
