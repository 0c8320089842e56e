// Package unique provides typed contract handles for the Unique Network EVM
// precompiles and collection contracts.
//
// Every collection on the chain is reachable as an EVM contract. Its address
// is derived from the collection id; a refungible token additionally has a
// nesting address derived from the collection id and token id. Two helper
// contracts live at fixed addresses.
//
// # Basic Usage
//
// Dial a node and bind a handle:
//
//	client, err := ethclient.Dial("https://rpc.unique.network")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	nft, err := unique.NewUniqueNFT(unique.CollectionID(1), client)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	owner, err := nft.OwnerOf(nil, big.NewInt(1))
//
// A collection may also be referenced by address, which is used verbatim:
//
//	nft, err := unique.NewUniqueNFT(unique.CollectionAddress("0x17c4e6453cc49aaaaeaca894e6d9683e00000001"), client)
//
// # Factories
//
//   - NewCollectionHelpers, NewContractHelpers: fixed addresses.
//   - NewUniqueNFT, NewUniqueFungible, NewUniqueRefungible: collection addresses.
//   - NewUniqueRefungibleToken: nesting address of one refungible token.
//
// Each factory parses its bundled ABI artifact and binds it on every call;
// nothing is cached between calls. The contract-call library defaults to
// go-ethereum's bind package and can be replaced with WithBinder.
//
// # Node Getters
//
// GetCollection and GetToken query the chain's custom RPC methods
// (unique_collectionById, unique_tokenData) and decode the UTF-16 vectors the
// node returns for names, descriptions and properties.
package unique
