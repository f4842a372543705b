package main

import "github.com/Artemoon13/health-os/cmd/healthos"

func main() {
	healthos.Execute()
}
