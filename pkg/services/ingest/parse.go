package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/de-tools/order-atlas/pkg/models/api"
)

// ErrUnexpectedShape marks payloads that are neither a bare order array nor
// an object carrying an "orders" field.
var ErrUnexpectedShape = errors.New("unexpected order payload shape")

// ParseOrders accepts the two payload shapes the extractor produces: a bare
// array of orders, or an object wrapping the array under "orders".
func ParseOrders(data []byte) ([]api.Order, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedShape
	}

	switch trimmed[0] {
	case '[':
		var orders []api.Order
		if err := json.Unmarshal(trimmed, &orders); err != nil {
			return nil, fmt.Errorf("parse order array: %w", err)
		}
		return orders, nil
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("parse order object: %w", err)
		}
		raw, ok := wrapper["orders"]
		if !ok {
			return nil, ErrUnexpectedShape
		}
		var orders []api.Order
		if err := json.Unmarshal(raw, &orders); err != nil {
			return nil, fmt.Errorf("parse orders field: %w", err)
		}
		return orders, nil
	default:
		return nil, ErrUnexpectedShape
	}
}
