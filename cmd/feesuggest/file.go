package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/DayOfShah/fee-suggestions/eth/gasprice"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// rpcResponse is a JSON-RPC response as saved by curl or a node console.
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// loadFeeHistory reads an eth_feeHistory result from path. The file holds
// either the bare result object or the JSON-RPC response carrying it.
func loadFeeHistory(path string) (*gasprice.FeeHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp rpcResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if resp.Error != nil {
		return nil, errors.Wrap(resp.Error, path)
	}
	if len(resp.Result) > 0 {
		data = resp.Result
	}
	var history gasprice.FeeHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return &history, nil
}
