package main

import "github.com/vibast-solutions/ms-go-landing/cmd"

func main() {
	cmd.Execute()
}
