// Command demo seeds the configured store with a sample week, a saved plan
// and a shopping list.
package main

import (
	"fmt"
	"log"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/store"
)

var sample = map[meal.Day]string{
	meal.Monday:    "カレー",
	meal.Tuesday:   "麻婆豆腐",
	meal.Wednesday: "焼き魚",
	meal.Thursday:  "ハンバーグ",
	meal.Friday:    "寿司",
}

func main() {
	cfg, err := store.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	kv, err := store.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	s := store.New(kv, store.WithWriteFaultHandler(func(key string, err error) {
		log.Fatalf("write %s: %v", key, err)
	}))
	defer s.Close()

	p := planner.New(s)
	for _, d := range meal.Days {
		if name, ok := sample[d]; ok {
			if err := p.SetSlot(d, meal.Dinner, name); err != nil {
				log.Fatal(err)
			}
		}
	}
	if _, err := p.SaveSnapshot(); err != nil {
		log.Fatal(err)
	}
	n, err := p.DeriveShoppingItems()
	if err != nil {
		log.Fatal(err)
	}
	p.AddShoppingItem("牛乳")
	p.ToggleFavorite("カレー")

	fmt.Printf("seeded %s: %d dinners, %d shopping items\n", cfg.BasePath(), len(p.Meals()), n+1)
}
