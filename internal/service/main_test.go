package service

import (
	"os"
	"testing"

	"VoyaGo/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
