package log

import (
	"io"
	"os"
	"path/filepath"

	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type RotateConfig struct {
	LogDir     string `toml:",omitempty"`
	Filename   string `toml:",omitempty"`
	MaxAge     int    `toml:",omitempty"` // days
	MaxSize    int    `toml:",omitempty"` // MB
	MaxBackups int    `toml:",omitempty"`
}

var defaultRotateConfig = RotateConfig{
	LogDir:     "logs",
	Filename:   "feesuggest.log",
	MaxSize:    100,
	MaxAge:     7,
	MaxBackups: 10,
}

func NewRotateConfig() *RotateConfig {
	conf := defaultRotateConfig
	return &conf
}

// NewFileRotateHandler returns a handler writing records to a size rotated
// file under config.LogDir. The closer releases the current file.
func NewFileRotateHandler(config *RotateConfig, format ethlog.Format) (ethlog.Handler, io.Closer, error) {
	if err := config.setup(); err != nil {
		return nil, nil, err
	}
	logDir, err := filepath.Abs(config.LogDir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "resolve log directory %s", config.LogDir)
	}
	w := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, config.Filename),
		MaxSize:    config.MaxSize, // megabytes
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		LocalTime:  true,
		Compress:   true,
	}
	return ethlog.StreamHandler(w, format), w, nil
}

func (c *RotateConfig) setup() error {
	if len(c.LogDir) == 0 {
		return errors.New("log directory not set")
	}
	if len(c.Filename) == 0 {
		c.Filename = defaultRotateConfig.Filename
	}
	if err := os.MkdirAll(c.LogDir, 0700); err != nil {
		return errors.Wrapf(err, "create log directory %s", c.LogDir)
	}
	return nil
}
