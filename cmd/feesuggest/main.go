package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	logging "github.com/DayOfShah/fee-suggestions/log"
)

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
)

var app *cli.App

func init() {
	app = cli.NewApp()
	app.Name = "feesuggest"
	app.Usage = "suggest transaction fees from eth_feeHistory results"
	app.Version = version()
	app.Commands = []cli.Command{
		commandSuggest,
		commandBaseFee,
		commandPriorityFee,
		commandTrend,
	}
	app.Flags = []cli.Flag{
		configFlag,
		verbosityFlag,
		logDirFlag,
		logJSONFlag,
		workersFlag,
	}
	app.Before = setupLogging
	app.After = closeLogging
}

// Commonly used command line flags.
var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
	}
	logDirFlag = cli.StringFlag{
		Name:  "logdir",
		Usage: "Also write logs to rotated files in this directory",
	}
	logJSONFlag = cli.BoolFlag{
		Name:  "log.json",
		Usage: "Write JSON records to the log files",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "Number of fee histories evaluated concurrently (default: one per CPU)",
	}
)

var logCloser io.Closer

func setupLogging(ctx *cli.Context) error {
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"
	output := io.Writer(os.Stderr)
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	cfg := &logging.Config{
		Verbosity: ctx.GlobalInt(verbosityFlag.Name),
		Color:     usecolor,
		JSON:      ctx.GlobalBool(logJSONFlag.Name),
	}
	if dir := ctx.GlobalString(logDirFlag.Name); dir != "" {
		cfg.Rotate = logging.NewRotateConfig()
		cfg.Rotate.LogDir = dir
	}
	closer, err := logging.Setup(cfg, output)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

func closeLogging(ctx *cli.Context) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

func version() string {
	v := "1.0.0"
	if gitCommit != "" {
		if len(gitCommit) > 8 {
			v += "-" + gitCommit[:8]
		} else {
			v += "-" + gitCommit
		}
	}
	if gitDate != "" {
		v += "-" + gitDate
	}
	return v
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
