package unique

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Call represents a contract method invocation with checked arguments.
// Call is immutable - modifier methods return new instances.
type Call struct {
	contract *Contract
	method   abi.Method
	args     []any
	value    *big.Int
}

// newCall creates a Call from a contract, method, and arguments.
// Each argument is checked against the method's input type.
func newCall(contract *Contract, method abi.Method, args []any) (*Call, error) {
	if len(args) != len(method.Inputs) {
		return nil, &ArgumentError{
			Method: method.Name,
			Index:  len(args),
			Err:    ErrArgumentCount,
		}
	}

	for i, arg := range args {
		if _, err := (abi.Arguments{method.Inputs[i]}).Pack(arg); err != nil {
			return nil, &ArgumentError{
				Method: method.Name,
				Index:  i,
				Err:    err,
			}
		}
	}

	return &Call{
		contract: contract,
		method:   method,
		args:     append([]any(nil), args...),
	}, nil
}

// Contract returns the target contract for this call.
func (c *Call) Contract() *Contract {
	return c.contract
}

// Method returns the ABI method for this call.
func (c *Call) Method() abi.Method {
	return c.method
}

// Args returns the arguments for this call.
func (c *Call) Args() []any {
	return c.args
}

// EthValue returns the value attached to this call (nil if none).
func (c *Call) EthValue() *big.Int {
	return c.value
}

// HasReturnValue returns true if the method has a return value.
func (c *Call) HasReturnValue() bool {
	return len(c.method.Outputs) > 0
}

// ReturnType returns the ABI type of the first return value, if any.
func (c *Call) ReturnType() *abi.Type {
	if len(c.method.Outputs) == 0 {
		return nil
	}
	return &c.method.Outputs[0].Type
}

// Selector returns the 4-byte function selector.
func (c *Call) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], c.method.ID[:4])
	return sel
}

// Data returns the ABI-encoded calldata: selector followed by the packed arguments.
func (c *Call) Data() ([]byte, error) {
	packed, err := c.method.Inputs.Pack(c.args...)
	if err != nil {
		return nil, err
	}
	return append(c.method.ID[:4:4], packed...), nil
}

// Unpack decodes raw return data of this call.
func (c *Call) Unpack(output []byte) ([]any, error) {
	if len(output) == 0 && c.HasReturnValue() {
		return nil, ErrNoReturnValue
	}
	return c.method.Outputs.Unpack(output)
}

// WithValue attaches native value to the call.
// Only payable methods accept value; for others the node rejects the transaction.
//
// Returns a new Call with the value set. A nil amount clears the value.
func (c *Call) WithValue(amount *big.Int) *Call {
	clone := c.clone()
	clone.value = nil
	if amount != nil {
		clone.value = new(big.Int).Set(amount)
	}
	return clone
}

// clone creates a shallow copy of the Call.
func (c *Call) clone() *Call {
	clone := *c
	clone.args = make([]any, len(c.args))
	copy(clone.args, c.args)
	return &clone
}
