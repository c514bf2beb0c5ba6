package main

import "clubpos/internal/app/server"

func main() {
	server.Run()
}
