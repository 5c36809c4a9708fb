package domain

import (
	"encoding/json"
)

// ListingRecord - одно объявление из выдачи Microburbs API.
// Raw хранит исходный JSON объявления без изменений: первые пять записей
// уходят в ответ клиенту как есть. Остальные поля - распарсенное подмножество,
// которое нужно для расчета статистики. Указатели, потому что все поля
// в апстриме опциональны: nil означает "нет значения, в расчет не берем".
type ListingRecord struct {
	Raw         json.RawMessage
	Price       *float64
	ListingDate *string
	Bedrooms    *float64
}

// ListingsPayload - распарсенный ответ апстрима.
type ListingsPayload struct {
	Results []ListingRecord
}
