package service

import (
	"sort"

	"foodigo/internal/domain"
)

const TopSellingLimit = 10

// RankTopSelling sums quantities per food across item lists and returns the top
// entries by total. Ties keep the order in which foods were first seen.
func RankTopSelling(lists [][]domain.OrderItem, limit int) []domain.TopSellingItem {
	index := make(map[string]int)
	ranked := make([]domain.TopSellingItem, 0)

	for _, items := range lists {
		for _, item := range items {
			key := item.FoodID
			if key == "" {
				key = item.Name
			}
			if key == "" || item.Quantity <= 0 {
				continue
			}
			pos, ok := index[key]
			if !ok {
				pos = len(ranked)
				index[key] = pos
				ranked = append(ranked, domain.TopSellingItem{
					FoodID: item.FoodID,
					Name:   item.Name,
					Price:  item.Price,
					Image:  item.Image,
				})
			}
			ranked[pos].TotalQuantity += item.Quantity
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalQuantity > ranked[j].TotalQuantity
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
