// Command main serves the blood donor registry HTTP API.
package main

import (
	"blood-donor-registry/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.WithError(err).Fatal("Startup failed")
	}
	app.Run()
}
