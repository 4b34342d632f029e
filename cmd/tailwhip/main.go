package main

import (
	"errors"
	"os"

	cmd "github.com/MrSnakeDoc/tailwhip/internal"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/middleware"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, middleware.ErrLogged) {
			logger.LogError("%s", err.Error())
		}
		os.Exit(1)
	}
}
