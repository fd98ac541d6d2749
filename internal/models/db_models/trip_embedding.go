package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// TripEmbedding indexes a saved trip for similarity lookups. The vector is a
// deterministic hash embedding of destination + trip type + interests.
type TripEmbedding struct {
	TripID      string `gorm:"primaryKey;column:trip_id"`
	UserID      string
	Destination string
	TripType    string
	Interests   pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
