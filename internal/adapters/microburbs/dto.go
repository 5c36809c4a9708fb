package microburbs

import (
	"encoding/json"
)

// listingsResponse - структура ответа Microburbs API.
// Ключ results может отсутствовать, тогда Results останется nil.
type listingsResponse struct {
	Results []listingDTO `json:"results"`
}

// listingDTO хранит одно объявление: исходные байты плюс распарсенное
// подмножество полей, нужное для статистики.
type listingDTO struct {
	raw json.RawMessage

	price       *float64
	listingDate *string
	bedrooms    *float64
}

// UnmarshalJSON разбирает объявление поле за полем.
// Кривое значение одного поля не валит всю запись: такое поле просто
// остается пустым и выпадает из агрегатов, а исходный JSON сохраняется целиком.
func (d *listingDTO) UnmarshalJSON(data []byte) error {
	d.raw = make(json.RawMessage, len(data))
	copy(d.raw, data)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Запись - не объект. Оставляем только сырые байты.
		return nil
	}

	// Декодируем через указатели: JSON null молча пропускается Unmarshal'ом
	// для значений, а здесь null должен означать "поля нет".
	if rawPrice, ok := fields["price"]; ok {
		var price *float64
		if err := json.Unmarshal(rawPrice, &price); err == nil && price != nil {
			d.price = price
		}
	}

	if rawDate, ok := fields["listing_date"]; ok {
		var date *string
		if err := json.Unmarshal(rawDate, &date); err == nil && date != nil {
			d.listingDate = date
		}
	}

	if rawAttrs, ok := fields["attributes"]; ok {
		var attrs struct {
			Bedrooms *float64 `json:"bedrooms"`
		}
		if err := json.Unmarshal(rawAttrs, &attrs); err == nil && attrs.Bedrooms != nil {
			d.bedrooms = attrs.Bedrooms
		}
	}

	return nil
}
