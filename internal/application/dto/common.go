package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpsertResult resumen de un lote procesado en modo upsert.
// processedCount = insertedCount + updatedCount; el commit es todo o nada.
type UpsertResult struct {
	InsertedCount  int `json:"insertedCount"`
	UpdatedCount   int `json:"updatedCount"`
	ProcessedCount int `json:"processedCount"`
}

// InsertResult resumen de un lote procesado en modo estricto (solo inserciones).
type InsertResult struct {
	InsertedCount int `json:"insertedCount"`
}
