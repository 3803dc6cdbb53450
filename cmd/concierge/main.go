package main

import "github.com/hotelsoft/concierge/cmd/concierge/cmd"

func main() {
	cmd.Execute()
}
