package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soapboxsocial/stories/pkg/conf"
	"github.com/soapboxsocial/stories/pkg/logger"
)

func TestInitialize(t *testing.T) {
	dir, err := os.MkdirTemp("", "logger")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "stories.log")

	err = logger.Initialize(conf.LogConf{Level: "debug", File: file})
	if err != nil {
		t.Fatal(err)
	}

	logger.Log.Info("hello")
	logger.Sync()

	info, err := os.Stat(file)
	if err != nil {
		t.Fatal(err)
	}

	if info.Size() == 0 {
		t.Fatal("expected log file to have content")
	}
}
