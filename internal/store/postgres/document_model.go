package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goto/pgsearch/core/searchable"
)

type DocumentModel struct {
	ID             int64     `db:"id"`
	SearchableType string    `db:"searchable_type"`
	SearchableID   string    `db:"searchable_id"`
	Content        string    `db:"content"`
	TSV            string    `db:"tsv"`
	Attributes     JSONMap   `db:"attributes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m DocumentModel) toDocument() searchable.Document {
	return searchable.Document{
		ID:             m.ID,
		SearchableType: m.SearchableType,
		SearchableID:   m.SearchableID,
		Content:        m.Content,
		Vector:         searchable.Vector(m.TSV),
		Attributes:     m.Attributes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// JSONMap is a jsonb column; NULL scans into a nil map.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	ba, err := m.MarshalJSON()
	return string(ba), err
}

func (m *JSONMap) Scan(value interface{}) error {
	var ba []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		ba = v
	case string:
		ba = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
	t := map[string]interface{}{}
	err := json.Unmarshal(ba, &t)
	*m = JSONMap(t)
	return err
}

// MarshalJSON to output non base64 encoded []byte
func (m JSONMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	t := (map[string]interface{})(m)
	return json.Marshal(t)
}
