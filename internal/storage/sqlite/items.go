package sqlite

import (
	"context"

	"clubmanager/gen/model"
	"clubmanager/gen/table"
	"clubmanager/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
)

func (s *Storage) ListItems(ctx context.Context) ([]domain.Item, error) {
	var dbItems []model.Items
	err := table.Items.
		SELECT(table.Items.AllColumns).
		FROM(table.Items).
		ORDER_BY(table.Items.ID.DESC()).
		QueryContext(ctx, s.db, &dbItems)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Item, 0, len(dbItems))
	for _, i := range dbItems {
		items = append(items, convertItemToDomain(i))
	}
	return items, nil
}

func (s *Storage) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	var inserted model.Items
	err := table.Items.
		INSERT(table.Items.MutableColumns).
		MODEL(convertItemFromDomain(item)).
		RETURNING(table.Items.AllColumns).
		QueryContext(ctx, s.db, &inserted)
	if err != nil {
		return domain.Item{}, err
	}
	return convertItemToDomain(inserted), nil
}

// TotalPrice sums over all items. SUM of an empty table is NULL, which
// reads as 0 here.
func (s *Storage) TotalPrice(ctx context.Context) (float64, error) {
	var dest struct {
		Total *float64
	}
	err := table.Items.
		SELECT(sqlite.SUMf(table.Items.Price).AS("total")).
		FROM(table.Items).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	if dest.Total == nil {
		return 0, nil
	}
	return *dest.Total, nil
}
