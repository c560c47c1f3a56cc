// Package log wires go-ethereum's logger to the terminal and, optionally, to
// rotated log files.
package log

import (
	"io"

	ethlog "github.com/ethereum/go-ethereum/log"
)

// Config selects where records go and how verbose they are.
type Config struct {
	Verbosity int           // 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Color     bool          // colored terminal output
	JSON      bool          // JSON records in the log file instead of logfmt
	Rotate    *RotateConfig // nil disables the log file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the root handler: terminal records on w filtered by
// verbosity, duplicated to the rotated log file when one is configured.
func Setup(cfg *Config, w io.Writer) (io.Closer, error) {
	var (
		handler = ethlog.StreamHandler(w, ethlog.TerminalFormat(cfg.Color))
		closer  io.Closer = nopCloser{}
	)
	if cfg.Rotate != nil {
		format := ethlog.LogfmtFormat()
		if cfg.JSON {
			format = ethlog.JSONFormat()
		}
		fileHandler, c, err := NewFileRotateHandler(cfg.Rotate, format)
		if err != nil {
			return nil, err
		}
		handler, closer = ethlog.MultiHandler(handler, fileHandler), c
	}
	ethlog.Root().SetHandler(ethlog.LvlFilterHandler(ethlog.Lvl(cfg.Verbosity), handler))
	return closer, nil
}
