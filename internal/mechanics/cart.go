package mechanics

import (
	"sort"

	"github.com/mgyenik/rasmodius/internal/rng"
	"github.com/mgyenik/rasmodius/internal/version"
)

// CartItem is one traveling cart stock slot.
type CartItem struct {
	ItemID   int32 `json:"item_id"`
	Price    int32 `json:"price"`
	Quantity int32 `json:"quantity"`
}

// GetCartForDay returns the cart stock for a game id and day. The three
// version families use structurally different algorithms; pre-1.6 seeds the
// generator with gameID+day under 32-bit wraparound.
func GetCartForDay(gameID, day int32, v version.GameVersion) []CartItem {
	if v.HasNewCartSystem() {
		return cartStock16(gameID, day)
	}
	if v.UsesLegacyRandom() {
		return cartStockPre14(gameID + day)
	}
	return cartStock14Plus(gameID + day)
}

// cartStockPre14 rolls ten slots straight through the roll-to-item table.
// No duplicate prevention: the same item can fill several slots.
func cartStockPre14(seed int32) []CartItem {
	r := rng.NewCSRandom(seed)
	stock := make([]CartItem, 0, 10)

	for i := 0; i < 10; i++ {
		roll := r.NextRange(2, 790)
		id := cartRollToItem[roll-2]
		stock = append(stock, CartItem{
			ItemID:   id,
			Price:    rollPrice(r, itemBasePrice(id)),
			Quantity: rollQuantity(r),
		})
	}
	return stock
}

// cartStock14Plus probes increasing item ids (mod 790) until an unseen valid
// item turns up. Price and quantity draws are consumed for EVERY valid
// candidate tested — rejected duplicates included — so the draw stream only
// matches the game if the rejects spend their rolls too.
func cartStock14Plus(seed int32) []CartItem {
	r := rng.NewCSRandom(seed)
	stock := make([]CartItem, 0, 10)
	seen := make(map[int32]bool, 10)

	for i := 0; i < 10; i++ {
		id := r.NextRange(2, 790)
		for {
			id = (id + 1) % 790
			if !isValidCartItem14(id) {
				continue
			}
			price := rollPrice(r, itemBasePrice(id))
			qty := rollQuantity(r)
			if seen[id] {
				continue
			}
			seen[id] = true
			stock = append(stock, CartItem{ItemID: id, Price: price, Quantity: qty})
			break
		}
	}
	return stock
}

// cartStock16 implements the shop-data algorithm: every catalog row draws a
// shuffle key (eligible or not), survivors are sorted by key ascending and
// the ten lowest keys passing the category checks become the stock.
func cartStock16(gameID, day int32) []CartItem {
	r := rng.NewCSRandom(rng.HashSeed(day, gameID/2))

	// On a key collision the row processed later in catalog order wins.
	// That matches the predictor ecosystem but is unverified against the
	// game itself; if the game ever disagrees, this map insert is the spot.
	shuffled := make(map[int32]catalogEntry, len(cartCatalog16))
	for _, e := range cartCatalog16 {
		key := r.Next() // drawn for every row, before any filtering
		if e.price == 0 || e.offlimits || e.id < 2 || e.id > 789 {
			continue
		}
		shuffled[key] = e
	}

	keys := make([]int32, 0, len(shuffled))
	for k := range shuffled {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	selected := make([]catalogEntry, 0, 10)
	for _, k := range keys {
		e := shuffled[k]
		if e.category >= 0 || e.category == -999 || e.typeExcluded {
			continue
		}
		selected = append(selected, e)
		if len(selected) == 10 {
			break
		}
	}

	stock := make([]CartItem, 0, len(selected))
	for _, e := range selected {
		stock = append(stock, CartItem{
			ItemID:   e.id,
			Price:    rollPrice(r, e.price),
			Quantity: rollQuantity(r),
		})
	}
	return stock
}

// rollPrice draws the two price rolls: max(Next(1,11)*100, Next(3,6)*base).
func rollPrice(r *rng.CSRandom, basePrice int32) int32 {
	randomPrice := r.NextRange(1, 11) * 100
	scaledPrice := r.NextRange(3, 6) * basePrice
	if scaledPrice > randomPrice {
		return scaledPrice
	}
	return randomPrice
}

// rollQuantity draws the quantity roll: 5 at 10%, else 1.
func rollQuantity(r *rng.CSRandom) int32 {
	if r.Sample() < 0.1 {
		return 5
	}
	return 1
}

// CartHasItem reports whether the cart carries the target item on a day,
// without building the full stock.
func CartHasItem(gameID, day, targetItem int32, v version.GameVersion) bool {
	if v.HasNewCartSystem() {
		return cartHasItem16(gameID, day, targetItem)
	}
	if v.UsesLegacyRandom() {
		return cartHasItemPre14(gameID+day, targetItem)
	}
	return cartHasItem14(gameID+day, targetItem)
}

func cartHasItemPre14(seed, targetItem int32) bool {
	r := rng.NewCSRandom(seed)
	for i := 0; i < 10; i++ {
		roll := r.NextRange(2, 790)
		id := cartRollToItem[roll-2]

		// The price/quantity results are unused here but the draws must
		// still be consumed to keep later slots in sync.
		r.NextRange(1, 11)
		r.NextRange(3, 6)
		r.Sample()

		if id == targetItem {
			return true
		}
	}
	return false
}

func cartHasItem14(seed, targetItem int32) bool {
	r := rng.NewCSRandom(seed)
	var seen [10]int32
	seenCount := 0

	for i := 0; i < 10; i++ {
		id := r.NextRange(2, 790)
		for {
			id = (id + 1) % 790
			if !isValidCartItem14(id) {
				continue
			}
			r.NextRange(1, 11)
			r.NextRange(3, 6)
			r.Sample()

			dup := false
			for j := 0; j < seenCount; j++ {
				if seen[j] == id {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			if id == targetItem {
				return true
			}
			seen[seenCount] = id
			seenCount++
			break
		}
	}
	return false
}

func cartHasItem16(gameID, day, targetItem int32) bool {
	for _, item := range cartStock16(gameID, day) {
		if item.ItemID == targetItem {
			return true
		}
	}
	return false
}

// FindItemInCart scans Fridays and Sundays up to maxDays for the first cart
// carrying the target item. ok is false when the item never shows up.
func FindItemInCart(gameID, targetItem, maxDays int32, v version.GameVersion) (CartItem, int32, bool) {
	for day := int32(5); day <= maxDays; day += 7 {
		for _, cartDay := range [2]int32{day, day + 2} {
			if cartDay > maxDays {
				continue
			}
			for _, item := range GetCartForDay(gameID, cartDay, v) {
				if item.ItemID == targetItem {
					return item, cartDay, true
				}
			}
		}
	}
	return CartItem{}, 0, false
}
