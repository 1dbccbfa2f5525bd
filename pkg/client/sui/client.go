package sui

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/suifaucet/faucet-backend/pkg/logging"
)

// DefaultGasBudget covers a single faucet call with headroom on
// devnet and testnet gas prices.
const DefaultGasBudget uint64 = 50_000_000

// Client signs and submits Move calls through a Sui fullnode. One call
// per request, no retries: failures surface immediately and verbatim
// so the caller can classify them.
type Client struct {
	rpc       *rpc.Client
	keypair   *Keypair
	gasBudget uint64
	logger    logging.Logger
}

func NewClient(ctx context.Context, fullnodeURL string, keypair *Keypair, logger logging.Logger) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, fullnodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to fullnode %s: %w", fullnodeURL, err)
	}

	return &Client{
		rpc:       rpcClient,
		keypair:   keypair,
		gasBudget: DefaultGasBudget,
		logger:    logger,
	}, nil
}

// SetGasBudget overrides the default gas budget for built calls.
func (c *Client) SetGasBudget(budget uint64) {
	if budget > 0 {
		c.gasBudget = budget
	}
}

// Address returns the signer's Sui address.
func (c *Client) Address() string {
	return c.keypair.Address()
}

// ExecuteMoveCall builds transaction bytes for the call on the
// fullnode, signs them with the server keypair and submits them,
// returning the transaction digest.
func (c *Client) ExecuteMoveCall(ctx context.Context, call MoveCall) (string, error) {
	var built transactionBytes
	err := c.rpc.CallContext(ctx, &built, "unsafe_moveCall",
		c.keypair.Address(),
		call.PackageID,
		call.Module,
		call.Function,
		call.TypeArguments,
		call.Arguments,
		nil, // let the fullnode pick a gas object
		strconv.FormatUint(c.gasBudget, 10),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build transaction for %s: %w", call.Target(), err)
	}

	txBytes, err := base64.StdEncoding.DecodeString(built.TxBytes)
	if err != nil {
		return "", fmt.Errorf("fullnode returned malformed transaction bytes: %w", err)
	}

	signature := c.keypair.SignTransactionBlock(txBytes)

	var result executeResponse
	err = c.rpc.CallContext(ctx, &result, "sui_executeTransactionBlock",
		built.TxBytes,
		[]string{signature},
		executeOptions{ShowEffects: true},
		"WaitForLocalExecution",
	)
	if err != nil {
		return "", err
	}

	if result.Effects != nil && result.Effects.Status.Status == "failure" {
		return "", fmt.Errorf("%s", result.Effects.Status.Error)
	}

	c.logger.Debug("transaction executed", "digest", result.Digest, "target", call.Target())
	return result.Digest, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.rpc.Close()
}
