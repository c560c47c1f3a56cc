package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/DayOfShah/fee-suggestions/common/gopool"
	"github.com/DayOfShah/fee-suggestions/eth/gasprice"
)

var commandSuggest = cli.Command{
	Name:      "suggest",
	Usage:     "Suggest the max base fee and max priority fees",
	ArgsUsage: "<feehistory.json...>",
	Action: func(ctx *cli.Context) error {
		return run(ctx, func(s *gasprice.Suggester, h *gasprice.FeeHistory) (interface{}, error) {
			return s.SuggestFees(h)
		})
	},
}

var commandBaseFee = cli.Command{
	Name:      "basefee",
	Usage:     "Suggest the max base fee and report the base fee trend",
	ArgsUsage: "<feehistory.json...>",
	Action: func(ctx *cli.Context) error {
		return run(ctx, func(s *gasprice.Suggester, h *gasprice.FeeHistory) (interface{}, error) {
			return s.SuggestMaxBaseFee(h)
		})
	},
}

var commandPriorityFee = cli.Command{
	Name:      "priorityfee",
	Usage:     "Suggest max priority fees from every reward record of the history",
	ArgsUsage: "<feehistory.json...>",
	Action: func(ctx *cli.Context) error {
		return run(ctx, func(s *gasprice.Suggester, h *gasprice.FeeHistory) (interface{}, error) {
			return s.SuggestMaxPriorityFee(h)
		})
	},
}

var commandTrend = cli.Command{
	Name:      "trend",
	Usage:     "Classify the base fee trend",
	ArgsUsage: "<feehistory.json...>",
	Action: func(ctx *cli.Context) error {
		return run(ctx, baseFeeTrend)
	},
}

type trendResult struct {
	Trend          gasprice.Trend `json:"trend"`
	Name           string         `json:"name"`
	CurrentBaseFee string         `json:"currentBaseFee,omitempty"`
}

func baseFeeTrend(s *gasprice.Suggester, h *gasprice.FeeHistory) (interface{}, error) {
	if len(h.BaseFee) == 0 {
		return nil, gasprice.ErrNoBaseFees
	}
	current := h.CurrentBaseFee()
	trend := s.BaseFeeTrend(h.BaseFeesGwei(), current)
	res := trendResult{Trend: trend, Name: trend.String()}
	if current != nil {
		res.CurrentBaseFee = current.String()
	}
	return res, nil
}

type evalFunc func(s *gasprice.Suggester, h *gasprice.FeeHistory) (interface{}, error)

type fileResult struct {
	File   string      `json:"file"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func run(ctx *cli.Context, eval evalFunc) error {
	files := []string(ctx.Args())
	if len(files) == 0 {
		return errors.New("no fee history file given")
	}
	cfg := gasprice.DefaultConfig
	if file := ctx.GlobalString(configFlag.Name); file != "" {
		if err := gasprice.LoadConfig(file, &cfg); err != nil {
			return err
		}
	}
	suggester := gasprice.NewSuggester(cfg)

	results, err := evaluateFiles(files, ctx.GlobalInt(workersFlag.Name), suggester, eval)
	if err != nil {
		return err
	}
	return printResults(ctx.App.Writer, results)
}

// evaluateFiles loads and evaluates every file on a worker pool. Results keep
// the order of files; a failing file records its error.
func evaluateFiles(files []string, workers int, s *gasprice.Suggester, eval evalFunc) ([]fileResult, error) {
	pool, err := gopool.New(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]fileResult, len(files))
	err = pool.Map(len(files), func(i int) {
		results[i] = fileResult{File: files[i]}
		history, err := loadFeeHistory(files[i])
		if err == nil {
			results[i].Result, err = eval(s, history)
		}
		if err != nil {
			log.Warn("Fee history evaluation failed", "file", files[i], "err", err)
			results[i].Result = nil
			results[i].Error = err.Error()
		}
	})
	return results, err
}

func printResults(w io.Writer, results []fileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fee histories failed", failed, len(results))
	}
	return nil
}
