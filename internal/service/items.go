package service

import (
	"context"
	"strings"

	"clubmanager/internal/domain"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

type ItemService struct {
	items storage.ItemStorage
	log   *logrus.Entry
}

func NewItemService(items storage.ItemStorage, l *logrus.Logger) *ItemService {
	return &ItemService{
		items: items,
		log:   l.WithField("from", "item-service"),
	}
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.ListItems(ctx)
}

func (s *ItemService) Total(ctx context.Context) (float64, error) {
	return s.items.TotalPrice(ctx)
}

func (s *ItemService) Create(ctx context.Context, name, description string, price float64) (domain.Item, error) {
	name = strings.TrimSpace(name)
	if err := invalid(validateItemName(name), validatePrice(price), validateDescription(description)); err != nil {
		return domain.Item{}, err
	}
	item, err := s.items.CreateItem(ctx, domain.Item{
		Name:        name,
		Description: description,
		Price:       price,
	})
	if err != nil {
		return domain.Item{}, err
	}
	s.log.WithField("item_id", item.ID).Info("item created")
	return item, nil
}
