package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/chatmate/chatmate/internal/chatmate/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := chatmate(); err != nil {
		logrus.Fatal(err)
	}
}

func chatmate() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
