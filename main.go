package main

import (
	"os"

	"github.com/saulo-duarte/quizgen/cmd"
)

// @title                      quizgen API
// @version                    1.0
// @description                Generates multiple-choice quizzes on any topic and keeps a history of attempts.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the JWT.
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
