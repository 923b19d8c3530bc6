package main

import "scurry-locator/cmd"

func main() {
	cmd.Execute()
}
