package unique

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrCollectionIDRange indicates a collection or token id outside 0..0xFFFFFFFF.
	ErrCollectionIDRange = errors.New("unique: id out of range (0..0xFFFFFFFF)")

	// ErrNilCollection indicates a nil CollectionRef.
	ErrNilCollection = errors.New("unique: nil collection reference")

	// ErrNotCollectionAddress indicates an address lacks the collection prefix.
	ErrNotCollectionAddress = errors.New("unique: address is not a collection address")

	// ErrUnknownABI indicates no bundled ABI artifact exists for a contract name.
	ErrUnknownABI = errors.New("unique: unknown contract ABI")

	// ErrNoReturnValue indicates a call produced no output to decode.
	ErrNoReturnValue = errors.New("unique: call returned no value")

	// ErrArgumentCount indicates a method was invoked with the wrong number of arguments.
	ErrArgumentCount = errors.New("unique: wrong number of arguments")
)

// RangeError reports an id that cannot be mapped to an address.
type RangeError struct {
	Kind  string
	Value int64
}

func (e *RangeError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("unique: %s %d is less than 0", e.Kind, e.Value)
	}
	return fmt.Sprintf("unique: %s %d is more than 2**32", e.Kind, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrCollectionIDRange
}

// MethodNotFoundError indicates the contract doesn't have the requested method.
type MethodNotFoundError struct {
	Contract common.Address
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("unique: method %q not found in contract %s", e.Method, e.Contract.Hex())
}

// ArgumentError indicates an issue with a method argument.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("unique: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ABIError wraps a failure to load or parse a bundled ABI artifact.
type ABIError struct {
	Name string
	Err  error
}

func (e *ABIError) Error() string {
	return fmt.Sprintf("unique: abi %s: %v", e.Name, e.Err)
}

func (e *ABIError) Unwrap() error {
	return e.Err
}

// RPCError wraps a failed node RPC request.
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("unique: rpc %s: %v", e.Method, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}
