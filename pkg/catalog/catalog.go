package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"
)

// Item is one purchasable service. An item is available iff its raw value in
// the prices file is a non-negative integer; any other value (string, float,
// bool, null, object) degrades it to an unavailable item at price 0.
type Item struct {
	Name      string
	Price     int64
	Available bool
}

// CategoryOrder fixes the rendering order of the price list. Upgrades is
// rendered as its own section.
var CategoryOrder = []string{
	"Repair Jobs",
	"Lockpick Tools",
	"Performance Parts",
	"Communication",
	"Cosmetics",
	UpgradesCategory,
}

const UpgradesCategory = "Upgrades"

// Categories maps a category to its ordered item names. Fixed at compile
// time; prices and availability come from the prices file.
var Categories = map[string][]string{
	"Repair Jobs":       {"Full Repair", "HG Full Repair", "Repair Kit", "Advanced Repair Kit"},
	"Lockpick Tools":    {"LockPick", "Advanced Lockpick"},
	"Performance Parts": {"Racing Harness", "NOS"},
	"Communication":     {"Long Range Radio"},
	"Cosmetics":         {"Fantastic Wax"},
	UpgradesCategory: {
		"Engine 1", "Engine 2", "Engine 3",
		"Suspension 1", "Suspension 2", "Suspension 3",
		"Transmission 1", "Transmission 2", "Transmission 3",
		"Brakes 1", "Brakes 2", "Brakes 3",
		"Turbo", "Upgrade Package",
	},
}

// Snapshot is an immutable view of the catalog. Handlers take a snapshot once
// and read prices from it, so a concurrent Reload never changes an in-flight
// computation halfway through.
type Snapshot struct {
	items map[string]Item
}

func (s *Snapshot) Item(name string) (Item, bool) {
	it, ok := s.items[name]
	return it, ok
}

func (s *Snapshot) IsAvailable(name string) bool {
	return s.items[name].Available
}

func (s *Snapshot) PriceOf(name string) int64 {
	return s.items[name].Price
}

func (s *Snapshot) Len() int {
	return len(s.items)
}

// ItemsInCategory returns every listed item of the category in fixed order.
// Names missing from the prices file come back as unavailable at price 0.
func (s *Snapshot) ItemsInCategory(category string) []Item {
	names := Categories[category]
	items := make([]Item, 0, len(names))
	for _, name := range names {
		it, ok := s.items[name]
		if !ok {
			it = Item{Name: name}
		}
		items = append(items, it)
	}
	return items
}

// AvailableItems returns only the items of the category that can be ordered.
func (s *Snapshot) AvailableItems(category string) []Item {
	var items []Item
	for _, it := range s.ItemsInCategory(category) {
		if it.Available {
			items = append(items, it)
		}
	}
	return items
}

// Store owns the current snapshot and knows how to rebuild it from the
// backing file.
type Store struct {
	path string

	mu   sync.RWMutex
	snap *Snapshot
}

// Load reads the prices file at path. A missing or malformed file yields an
// empty catalog, not an error: the shop simply has nothing in stock.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	s.snap = readSnapshot(path)
	return s, nil
}

func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Reload re-reads the backing file and swaps in a fresh snapshot. Snapshots
// already handed out are untouched.
func (s *Store) Reload() error {
	snap := readSnapshot(s.path)
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

func readSnapshot(path string) *Snapshot {
	snap := &Snapshot{items: make(map[string]Item)}

	data, err := os.ReadFile(path)
	if err != nil {
		return snap
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return snap
	}

	for name, value := range raw {
		snap.items[name] = parseItem(name, value)
	}
	return snap
}

func parseItem(name string, value any) Item {
	num, ok := value.(json.Number)
	if !ok {
		return Item{Name: name}
	}
	price, err := num.Int64()
	if err != nil || price < 0 {
		return Item{Name: name}
	}
	return Item{Name: name, Price: price, Available: true}
}
