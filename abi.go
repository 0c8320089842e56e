package unique

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Names of the bundled ABI artifacts.
const (
	CollectionHelpersABI     = "CollectionHelpers"
	ContractHelpersABI       = "ContractHelpers"
	UniqueNFTABI             = "UniqueNFT"
	UniqueFungibleABI        = "UniqueFungible"
	UniqueRefungibleABI      = "UniqueRefungible"
	UniqueRefungibleTokenABI = "UniqueRefungibleToken"
)

//go:embed abi/*.json
var artifacts embed.FS

// ABIJSON returns the raw bundled ABI artifact for the named contract.
func ABIJSON(name string) ([]byte, error) {
	data, err := artifacts.ReadFile(path.Join("abi", name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ABIError{Name: name, Err: ErrUnknownABI}
		}
		return nil, &ABIError{Name: name, Err: err}
	}
	return data, nil
}

// LoadABI reads and parses the bundled ABI for the named contract.
// Nothing is cached; each call parses the artifact again.
func LoadABI(name string) (abi.ABI, error) {
	data, err := ABIJSON(name)
	if err != nil {
		return abi.ABI{}, err
	}
	parsed, err := ParseABI(string(data))
	if err != nil {
		return abi.ABI{}, &ABIError{Name: name, Err: err}
	}
	return parsed, nil
}

// ABINames lists the bundled ABI artifacts.
func ABINames() []string {
	entries, err := artifacts.ReadDir("abi")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
