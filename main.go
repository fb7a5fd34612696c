package main

import "speakertag/cmd"

func main() {
	cmd.Execute()
}
