package rentalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// ListBikes возвращает все байки каталога
func (c *Client) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	var bikes []domain.Bike
	if err := c.get(ctx, "list_bikes", "/bike", &bikes); err != nil {
		return nil, err
	}
	return bikes, nil
}

// GetBike возвращает байк по ID
func (c *Client) GetBike(ctx context.Context, id int64) (*domain.Bike, error) {
	var bike domain.Bike
	if err := c.get(ctx, "get_bike", fmt.Sprintf("/bike/%d", id), &bike); err != nil {
		return nil, err
	}
	return &bike, nil
}

// CreateBike создает байк
func (c *Client) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	var created domain.Bike
	if err := c.send(ctx, "create_bike", http.MethodPost, "/bike", bike, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBike частично обновляет байк
func (c *Client) UpdateBike(ctx context.Context, id int64, bike *domain.Bike) (*domain.Bike, error) {
	var updated domain.Bike
	if err := c.send(ctx, "update_bike", http.MethodPatch, fmt.Sprintf("/bike/%d", id), bike, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBike удаляет байк
func (c *Client) DeleteBike(ctx context.Context, id int64) error {
	return c.send(ctx, "delete_bike", http.MethodDelete, fmt.Sprintf("/bike/%d", id), nil, nil)
}

// SearchBikes ищет байки, доступные в городе на интервал аренды.
// Ответ, не являющийся массивом, считается пустой выдачей.
func (c *Client) SearchBikes(ctx context.Context, search domain.BikeSearch) ([]domain.Bike, error) {
	body := searchRequest{
		City:        search.City,
		PickupDate:  search.PickupAt.UTC().Format(ISOFormat),
		DropoffDate: search.DropoffAt.UTC().Format(ISOFormat),
	}

	var raw json.RawMessage
	if err := c.send(ctx, "search_bikes", http.MethodPost, "/bike/search", body, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		c.log.Warn("RentalAPI: bike search for city=%s returned non-array payload", search.City)
		return []domain.Bike{}, nil
	}

	var bikes []domain.Bike
	if err := json.Unmarshal(trimmed, &bikes); err != nil {
		return nil, fmt.Errorf("%w: search_bikes: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return bikes, nil
}
