package rentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

func (c *Client) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var offers []domain.Offer
	if err := c.get(ctx, "list_offers", "/offer", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *Client) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	var offer domain.Offer
	if err := c.get(ctx, "get_offer", fmt.Sprintf("/offer/%d", id), &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (c *Client) CreateOffer(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	var created domain.Offer
	if err := c.send(ctx, "create_offer", http.MethodPost, "/offer", offer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOffer(ctx context.Context, id int64, offer *domain.Offer) (*domain.Offer, error) {
	var updated domain.Offer
	if err := c.send(ctx, "update_offer", http.MethodPatch, fmt.Sprintf("/offer/%d", id), offer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOffer(ctx context.Context, id int64) error {
	return c.send(ctx, "delete_offer", http.MethodDelete, fmt.Sprintf("/offer/%d", id), nil, nil)
}

// ListServices возвращает карточки услуг
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := c.get(ctx, "list_services", "/service", &services); err != nil {
		return nil, err
	}
	return services, nil
}
