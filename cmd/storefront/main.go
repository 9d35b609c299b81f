package main

// @title Storefront APIs
// @version 1.0
// @description Cart and session layer between storefront views and the backend API.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Println(err)
		os.Exit(1)
	}
}
