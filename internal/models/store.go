package models

import (
	"encoding/json"
	"time"
)

// KeyValue is a row of key_value_store.
type KeyValue struct {
	ID        int32           `json:"id"`
	JSONBody  json.RawMessage `json:"json_body"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// KeyValueVector is a row of key_value_vector.
type KeyValueVector struct {
	ID         int32           `json:"id"`
	VectorData []float32       `json:"vector_data"`
	Metadata   json.RawMessage `json:"metadata"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
