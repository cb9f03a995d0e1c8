package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/entity"
)

var ErrDecode = errors.New("decode operations")

// ReadOperations reads the operation document stored at path.
func ReadOperations(path string) ([]entity.Operation, error) {
	log.Debugf("[OperationReader] Reading operations file: %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open operations file %s: %w", path, err)
	}
	defer file.Close()

	operations, err := DecodeOperations(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("[OperationReader] Parsed %d operations from %s", len(operations), path)
	return operations, nil
}

// DecodeOperations decodes a single JSON array of operation records.
// Any malformed record rejects the whole document.
func DecodeOperations(r io.Reader) ([]entity.Operation, error) {
	dec := json.NewDecoder(r)

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the operation list", ErrDecode)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: operation list is null", ErrDecode)
	}

	operations := make([]entity.Operation, 0, len(raw))
	for i, msg := range raw {
		var op entity.Operation
		if err := json.Unmarshal(msg, &op); err != nil {
			return nil, fmt.Errorf("%w: record #%d: %w", ErrDecode, i+1, err)
		}
		operations = append(operations, op)
	}

	return operations, nil
}
