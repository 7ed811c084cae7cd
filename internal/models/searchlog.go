package models

import "time"

// SearchLogEntry é o registro append-only de uma busca executada.
// A escrita é fire-and-forget: falha de log nunca falha a busca.
type SearchLogEntry struct {
	ID          string         `bson:"_id" json:"id"`
	SessionHash string         `bson:"sessionHash" json:"sessionHash"`
	Filters     *SearchRequest `bson:"filters" json:"filters"`
	ResultCount int64          `bson:"resultCount" json:"resultCount"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}
