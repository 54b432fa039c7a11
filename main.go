package main

import "catalogkv/cmd"

func main() {
	cmd.Execute()
}
