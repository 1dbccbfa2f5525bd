package sui

import "fmt"

// MoveCall describes a single Move entry-point invocation before it is
// turned into transaction bytes: the target function, its type
// arguments and its positional arguments. Argument order is
// contract-defined; reordering breaks on-chain execution.
type MoveCall struct {
	PackageID     string
	Module        string
	Function      string
	TypeArguments []string
	// Arguments are SuiJSON values: object IDs and addresses as hex
	// strings, u64 values as decimal strings.
	Arguments []interface{}
}

// Target returns the package::module::function path of the call.
func (c MoveCall) Target() string {
	return fmt.Sprintf("%s::%s::%s", c.PackageID, c.Module, c.Function)
}

type transactionBytes struct {
	TxBytes string `json:"txBytes"`
}

type executionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type transactionEffects struct {
	Status executionStatus `json:"status"`
}

type executeResponse struct {
	Digest  string              `json:"digest"`
	Effects *transactionEffects `json:"effects,omitempty"`
}

type executeOptions struct {
	ShowEffects bool `json:"showEffects"`
}
