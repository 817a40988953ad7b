package log

import (
	"errors"
	"testing"
)

func TestLogNotInitialized(t *testing.T) {
	Info("Test log.Info", " value is ", 10)
	Infof("Test log.Infof %d", 10)
	Debugf("Test log.Debugf %d", 10)
	Error("Test log.Error", " value is ", 10)
	Errorf("Test log.Errorf %d", 10)
	Warnf("Test log.Warnf %d", 10)
}

func TestLog(t *testing.T) {
	cfg := Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{"stderr"},
	}

	Init(cfg)

	Info("Test log.Info", " value is ", 10)
	Infof("Test log.Infof %d", 10)
	Debugf("Test log.Debugf %d", 10)
	Error("Test log.Error", " value is ", 10)
	Errorf("Test log.Errorf %d", 10)
	Warnf("Test log.Warnf %d", 10)

	err := errors.New("test error")
	Error("this is an error: ", err)
	Errorf("this is an error: %v", err)

	l := WithFields("module", "test")
	l.Info("logger with fields")
	l.Debugf("logger with fields %d", 10)
}
