// Package network provides the serialization format and file I/O for
// transit networks.
//
// Networks are exchanged as JSON by default; the BSON twin exists for
// compact binary interchange and cache entries. The loader that produces
// the initial stop/link sequences lives outside the core graph engine
// (see package gtfs); this package is the contract between the two.
package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// MarshalNetwork converts a network to indented JSON bytes.
func MarshalNetwork(n Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNetworkTo(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalNetwork deserializes JSON bytes to a Network.
func UnmarshalNetwork(data []byte) (Network, error) {
	var n Network
	if err := json.Unmarshal(data, &n); err != nil {
		return Network{}, err
	}
	return n, nil
}

// EncodeBSON converts a network to BSON bytes.
func EncodeBSON(n Network) ([]byte, error) {
	return bson.Marshal(n)
}

// DecodeBSON deserializes BSON bytes to a Network.
func DecodeBSON(data []byte) (Network, error) {
	var n Network
	if err := bson.Unmarshal(data, &n); err != nil {
		return Network{}, err
	}
	return n, nil
}

// WriteNetwork writes a network as JSON to an io.Writer.
func WriteNetwork(n Network, w io.Writer) error {
	return writeNetworkTo(n, w)
}

// ReadNetwork decodes a JSON network from an io.Reader.
func ReadNetwork(r io.Reader) (Network, error) {
	var n Network
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return Network{}, fmt.Errorf("decode: %w", err)
	}
	return n, nil
}

// WriteFile writes a network to path, choosing the encoding by extension:
// .bson produces BSON, everything else JSON. The file is created with
// 0644 permissions.
func WriteFile(n Network, path string) error {
	if isBSON(path) {
		data, err := EncodeBSON(n)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return os.WriteFile(path, data, 0o644)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeNetworkTo(n, f)
}

// ReadFile reads a network file, choosing the decoding by extension:
// .bson is decoded as BSON, everything else as JSON.
func ReadFile(path string) (Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Network{}, fmt.Errorf("open %s: %w", path, err)
	}
	if isBSON(path) {
		return DecodeBSON(data)
	}
	return UnmarshalNetwork(data)
}

func isBSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ExtBSON)
}

func writeNetworkTo(n Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
