package unique

import (
	"context"
	"encoding/json"
	"unicode/utf16"
)

// RPCClient is the subset of *rpc.Client used by the node getters.
type RPCClient interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

// Property is a decoded collection or token property.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PropertyPermission is a decoded token property permission.
type PropertyPermission struct {
	Key        string          `json:"key"`
	Permission json.RawMessage `json:"permission"`
}

// Collection is the decoded result of unique_collectionById.
type Collection struct {
	Owner                    string               `json:"owner"`
	Mode                     json.RawMessage      `json:"mode"`
	Name                     string               `json:"name"`
	Description              string               `json:"description"`
	TokenPrefix              string               `json:"token_prefix"`
	Sponsorship              json.RawMessage      `json:"sponsorship"`
	Limits                   json.RawMessage      `json:"limits"`
	Permissions              json.RawMessage      `json:"permissions"`
	TokenPropertyPermissions []PropertyPermission `json:"token_property_permissions"`
	Properties               []Property           `json:"properties"`
	ReadOnly                 bool                 `json:"read_only"`
}

// Token is the decoded result of unique_tokenData.
type Token struct {
	Owner      json.RawMessage `json:"owner"`
	Properties []Property      `json:"properties"`
	Pieces     json.RawMessage `json:"pieces,omitempty"`
}

// codeUnits is a vector of UTF-16 code units as returned by the node.
type codeUnits []uint16

func (v codeUnits) String() string {
	return string(utf16.Decode(v))
}

type rawProperty struct {
	Key   codeUnits `json:"key"`
	Value codeUnits `json:"value"`
}

type rawCollection struct {
	Owner                    string          `json:"owner"`
	Mode                     json.RawMessage `json:"mode"`
	Name                     codeUnits       `json:"name"`
	Description              codeUnits       `json:"description"`
	TokenPrefix              codeUnits       `json:"token_prefix"`
	Sponsorship              json.RawMessage `json:"sponsorship"`
	Limits                   json.RawMessage `json:"limits"`
	Permissions              json.RawMessage `json:"permissions"`
	TokenPropertyPermissions []struct {
		Key        codeUnits       `json:"key"`
		Permission json.RawMessage `json:"permission"`
	} `json:"token_property_permissions"`
	Properties []rawProperty `json:"properties"`
	ReadOnly   bool          `json:"read_only"`
}

type rawToken struct {
	Owner      json.RawMessage `json:"owner"`
	Properties []rawProperty   `json:"properties"`
	Pieces     json.RawMessage `json:"pieces,omitempty"`
}

func decodeProperties(raw []rawProperty) []Property {
	out := make([]Property, len(raw))
	for i, p := range raw {
		out[i] = Property{Key: p.Key.String(), Value: p.Value.String()}
	}
	return out
}

// GetCollection fetches a collection from the node and decodes its text fields.
// It returns nil when the collection does not exist.
func GetCollection(ctx context.Context, client RPCClient, collection CollectionRef) (*Collection, error) {
	id, err := refID(collection)
	if err != nil {
		return nil, err
	}

	var raw *rawCollection
	if err := client.CallContext(ctx, &raw, "unique_collectionById", id); err != nil {
		return nil, &RPCError{Method: "unique_collectionById", Err: err}
	}
	if raw == nil {
		return nil, nil
	}

	out := &Collection{
		Owner:                    raw.Owner,
		Mode:                     raw.Mode,
		Name:                     raw.Name.String(),
		Description:              raw.Description.String(),
		TokenPrefix:              raw.TokenPrefix.String(),
		Sponsorship:              raw.Sponsorship,
		Limits:                   raw.Limits,
		Permissions:              raw.Permissions,
		TokenPropertyPermissions: make([]PropertyPermission, len(raw.TokenPropertyPermissions)),
		Properties:               decodeProperties(raw.Properties),
		ReadOnly:                 raw.ReadOnly,
	}
	for i, p := range raw.TokenPropertyPermissions {
		out.TokenPropertyPermissions[i] = PropertyPermission{Key: p.Key.String(), Permission: p.Permission}
	}
	return out, nil
}

// GetToken fetches a token's data from the node.
func GetToken(ctx context.Context, client RPCClient, collection CollectionRef, tokenID uint32) (*Token, error) {
	id, err := refID(collection)
	if err != nil {
		return nil, err
	}

	var raw rawToken
	if err := client.CallContext(ctx, &raw, "unique_tokenData", id, tokenID); err != nil {
		return nil, &RPCError{Method: "unique_tokenData", Err: err}
	}
	return &Token{
		Owner:      raw.Owner,
		Properties: decodeProperties(raw.Properties),
		Pieces:     raw.Pieces,
	}, nil
}
