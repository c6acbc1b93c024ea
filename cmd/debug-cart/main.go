// debug-cart prints the traveling cart stock for one seed and day across
// every supported game version, for eyeballing against in-game stock.
package main

import (
	"flag"
	"fmt"

	"github.com/mgyenik/rasmodius/internal/mechanics"
	"github.com/mgyenik/rasmodius/internal/version"
)

func main() {
	seed := flag.Int("seed", 12345, "save seed (game ID)")
	day := flag.Int("day", 5, "days played")
	flag.Parse()

	d := int32(*day)
	if !mechanics.IsCartDay(d) {
		fmt.Printf("day %d is not a cart day (cart appears Fridays and Sundays)\n", d)
		return
	}

	versions := []version.GameVersion{version.V13, version.V14, version.V15, version.V16}
	for _, v := range versions {
		fmt.Printf("=== %s ===\n", v)
		for i, item := range mechanics.GetCartForDay(int32(*seed), d, v) {
			fmt.Printf("  %2d. item %4d  %5dg  x%d\n", i+1, item.ItemID, item.Price, item.Quantity)
		}
	}
}
