// Package doa lists the Ramadan supplication items the memorization
// tracker works with. Only identity and metadata live here; the texts
// themselves are presented elsewhere.
package doa

// Category groups items by when they are recited.
type Category string

const (
	CategoryNiat    Category = "niat"
	CategoryBerbuka Category = "berbuka"
	CategorySahur   Category = "sahur"
)

// Item is one trackable supplication.
type Item struct {
	ID         string
	Title      string
	Category   Category
	Source     string
	Importance string // wajib, sunnah, digalakkan
}

var items = []Item{
	{"niat_harian", "Niat Puasa Harian", CategoryNiat, "Mazhab Syafie", "wajib"},
	{"niat_sebulan", "Niat Puasa Sebulan", CategoryNiat, "Mazhab Maliki", "sunnah"},
	{"berbuka_sahih", "Doa Berbuka Puasa (Sahih)", CategoryBerbuka, "Sunan Abu Daud", "sunnah"},
	{"berbuka_jakim", "Doa Berbuka Puasa (Masyhur)", CategoryBerbuka, "Amalan JAKIM", "sunnah"},
	{"berbuka_ringkas", "Doa Berbuka Ringkas", CategoryBerbuka, "Amalan umum", "digalakkan"},
	{"berbuka_jemaah", "Doa Berbuka Bersama Jemaah", CategoryBerbuka, "Amalan umum", "digalakkan"},
	{"berbuka_ampun", "Doa Memohon Keampunan", CategoryBerbuka, "Amalan umum", "digalakkan"},
	{"sahur_sebelum", "Doa Sebelum Sahur", CategorySahur, "Amalan umum", "digalakkan"},
	{"sahur_semasa", "Zikir Semasa Sahur", CategorySahur, "Amalan umum", "digalakkan"},
	{"sahur_selepas", "Doa Selepas Sahur", CategorySahur, "Amalan umum", "digalakkan"},
}

// All returns every item in catalog order.
func All() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByCategory filters the catalog to one category, preserving order.
func ByCategory(c Category) []Item {
	var out []Item
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// Lookup resolves an item by id.
func Lookup(id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Categories returns the categories in display order.
func Categories() []Category {
	return []Category{CategoryNiat, CategoryBerbuka, CategorySahur}
}
