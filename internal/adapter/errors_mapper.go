// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const revertMarker = "execution reverted"

// mapRPCError wraps revert errors returned by the node in
// ErrExecutionReverted. The revert reason is decoded from the error data
// when the node attaches it, otherwise the node's message after the marker
// is kept as is. Other errors pass through unchanged.
func mapRPCError(err error) error {
	if err == nil {
		return nil
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := decodeRevertReason(dataErr.ErrorData()); ok {
			return fmt.Errorf("%w: %s", ErrExecutionReverted, reason)
		}
	}

	msg := err.Error()
	if idx := strings.Index(msg, revertMarker); idx >= 0 {
		return fmt.Errorf("%w%s", ErrExecutionReverted, msg[idx+len(revertMarker):])
	}

	return err
}

// decodeRevertReason unpacks Error(string) and Panic(uint256) payloads.
// Custom errors are reported by their selector.
func decodeRevertReason(data any) (string, bool) {
	hexData, ok := data.(string)
	if !ok {
		return "", false
	}
	raw, err := hexutil.Decode(hexData)
	if err != nil || len(raw) < 4 {
		return "", false
	}

	if reason, err := abi.UnpackRevert(raw); err == nil {
		return reason, true
	}

	return fmt.Sprintf("custom error %s", hexutil.Encode(raw[:4])), true
}
