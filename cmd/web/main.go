package main

import "foodboard_backend/internal/app"

func main() {
	app.Run()
}
