package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	explorerConfig := LoadExplorerConfig()
	explorer, err := NewExplorer(explorerConfig)
	if err != nil {
		log.Errorf("[explorer][status: error] %s", err.Error())
		os.Exit(1)
	}

	err = explorer.Run(context.Background())
	if err != nil {
		log.Errorf("[explorer][status: error] %s", err.Error())
		os.Exit(1)
	}

	log.Debug("[explorer] finish main.go")
}
