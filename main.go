package main

import (
	"github.com/joho/godotenv"

	"github.com/fitquest/fitquest-cli/cmd/fitquest"
)

func main() {
	_ = godotenv.Load()
	fitquest.Execute()
}
