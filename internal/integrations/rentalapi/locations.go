package rentalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

// ListCities возвращает города вместе с их районами
func (c *Client) ListCities(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	if err := c.get(ctx, "list_cities", "/city", &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (c *Client) CreateCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	var created domain.City
	if err := c.send(ctx, "create_city", http.MethodPost, "/city", city, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCity(ctx context.Context, id int64, city *domain.City) (*domain.City, error) {
	var updated domain.City
	if err := c.send(ctx, "update_city", http.MethodPatch, fmt.Sprintf("/city/%d", id), city, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCity(ctx context.Context, id int64) error {
	return c.send(ctx, "delete_city", http.MethodDelete, fmt.Sprintf("/city/%d", id), nil, nil)
}

func (c *Client) ListAreas(ctx context.Context) ([]domain.Area, error) {
	var areas []domain.Area
	if err := c.get(ctx, "list_areas", "/area", &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// AreasByCity возвращает районы города по его названию
func (c *Client) AreasByCity(ctx context.Context, city string) ([]domain.Area, error) {
	var areas []domain.Area
	if err := c.get(ctx, "areas_by_city", "/area/city/name/"+url.PathEscape(city), &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (c *Client) CreateArea(ctx context.Context, area *domain.Area) (*domain.Area, error) {
	var created domain.Area
	if err := c.send(ctx, "create_area", http.MethodPost, "/area", area, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteArea(ctx context.Context, id int64) error {
	return c.send(ctx, "delete_area", http.MethodDelete, fmt.Sprintf("/area/%d", id), nil, nil)
}
