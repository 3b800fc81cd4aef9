package domain

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

const keySep = "_"

// CompositeKey собирает ключ "{base}_{frosting}_{topping}"
func CompositeKey(base, frosting, topping string) string {
	return base + keySep + frosting + keySep + topping
}

// Key — составной ключ текущей конфигурации
func (c Configuration) Key() string {
	return CompositeKey(c.Base.ID, c.Frosting.ID, c.Topping.ID)
}

// SplitKey разбирает составной ключ обратно на три id.
func SplitKey(key string) (base, frosting, topping string, err error) {
	parts := strings.Split(key, keySep)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return parts[0], parts[1], parts[2], nil
}

// AssetEntry — одна строка таблицы картинок
type AssetEntry struct {
	Key  string `json:"key" yaml:"key"`
	Path string `json:"path" yaml:"path"`
}

// Resolution — результат поиска картинки
type Resolution struct {
	Key     string `json:"key"`
	Path    string `json:"path,omitempty"`
	Found   bool   `json:"found"`
	Missing bool   `json:"missing"` // основа выбрана, а ключа в таблице нет
}

// AssetTable — таблица "составной ключ -> путь к картинке".
// Её правят через админку, поэтому под RWMutex.
type AssetTable struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewAssetTable строит таблицу из списка строк.
func NewAssetTable(entries []AssetEntry) *AssetTable {
	t := &AssetTable{entries: make(map[string]string, len(entries))}
	for _, e := range entries {
		t.entries[e.Key] = e.Path
	}
	return t
}

// DefaultAssetEntries — то, что есть в фотобанке на старте
func DefaultAssetEntries() []AssetEntry {
	return []AssetEntry{
		// только основа
		{Key: "redvelvet_none_none", Path: "MG/redvelvet.jpg"},
		{Key: "matcha_none_none", Path: "MG/matcha.jpg"},
		{Key: "chocolate_none_none", Path: "MG/chocolate.jpg"},
		{Key: "vanilla_none_none", Path: "MG/nature.jpg"},

		{Key: "vanilla_pinkicing_sprinkles", Path: "vanillafrosting"},
		{Key: "redvelvet_pinkicing_none", Path: "photoCookie/Nutrition _ Crumbl.jpg"},
		{Key: "chocolate_whitecream_none", Path: "photoCookie/Crumbl - Freshly Baked Cookies & Desserts.jpg"},

		{Key: "redvelvet_none_sprinkles", Path: "photoCookie/Red Velvet Cookies.jpg"},
		{Key: "chocolate_none_drizzle", Path: "photoCookie/téléchargé (1).jpg"},
		{Key: "matcha_none_drizzle", Path: "photoCookie/The BEST Brown Butter Matcha Cookies Recipe - EricTriesIt.jpg"},
	}
}

// Resolve ищет картинку для конфигурации. Без основы картинки нет никогда.
func (t *AssetTable) Resolve(c Configuration) Resolution {
	res := Resolution{Key: c.Key()}
	if c.Base.IsNone() {
		return res
	}

	t.mu.RLock()
	path, ok := t.entries[res.Key]
	t.mu.RUnlock()

	if !ok || path == "" {
		res.Missing = true
		return res
	}
	res.Path = path
	res.Found = true
	return res
}

// Lookup — прямой доступ по ключу
func (t *AssetTable) Lookup(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.entries[key]
	return p, ok
}

// Set добавляет или заменяет строку.
func (t *AssetTable) Set(key, path string) {
	t.mu.Lock()
	t.entries[key] = path
	t.mu.Unlock()
}

// Delete убирает строку, возвращает false если её не было.
func (t *AssetTable) Delete(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	return true
}

// Entries — копия таблицы, отсортированная по ключу
func (t *AssetTable) Entries() []AssetEntry {
	t.mu.RLock()
	out := make([]AssetEntry, 0, len(t.entries))
	for k, v := range t.entries {
		out = append(out, AssetEntry{Key: k, Path: v})
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len — количество строк
func (t *AssetTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// ValidateEntry проверяет одну строку против каталога.
func ValidateEntry(cat *Catalog, e AssetEntry) error {
	base, frosting, topping, err := SplitKey(e.Key)
	if err != nil {
		return err
	}
	if base == NoneID {
		return fmt.Errorf("%s: base must not be %q", e.Key, NoneID)
	}
	if e.Path == "" {
		return fmt.Errorf("%s: empty path", e.Key)
	}
	ids := []string{base, frosting, topping}
	for i, c := range Categories {
		if !contains(cat.IDs(c), ids[i]) {
			return fmt.Errorf("%s: %w: %s %q", e.Key, ErrUnknownIngredient, c, ids[i])
		}
	}
	return nil
}

// ValidateTable проверяет все строки и собирает ошибки в одну.
func ValidateTable(cat *Catalog, entries []AssetEntry) error {
	var errs []string
	for _, e := range entries {
		if err := ValidateEntry(cat, e); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("asset table validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Coverage возвращает все комбинации с основой, для которых нет картинки.
func (t *AssetTable) Coverage(cat *Catalog) []string {
	missing := make([]string, 0)
	for _, b := range cat.IDs(CategoryBase) {
		if b == NoneID {
			continue
		}
		for _, f := range cat.IDs(CategoryFrosting) {
			for _, tp := range cat.IDs(CategoryTopping) {
				key := CompositeKey(b, f, tp)
				if p, ok := t.Lookup(key); !ok || p == "" {
					missing = append(missing, key)
				}
			}
		}
	}
	return missing
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
