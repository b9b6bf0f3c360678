package meal

import "strings"

// Category is a cuisine bucket used for coloring and grouping dishes.
type Category string

const (
	Japanese Category = "和食"
	Western  Category = "洋食"
	Chinese  Category = "中華"
	Other    Category = "その他"
)

// Categories is the fixed lookup order for CategoryOf.
var Categories = []Category{Japanese, Western, Chinese, Other}

var categoryDishes = map[Category][]string{
	Japanese: {"味噌汁", "煮物", "すき焼き", "親子丼", "天ぷら", "刺身", "焼き魚", "肉じゃが", "カレー", "丼もの"},
	Western:  {"パスタ", "ピザ", "ハンバーグ", "ステーキ", "サラダ", "スープ", "グラタン", "リゾット", "オムライス", "サンドイッチ"},
	Chinese:  {"チャーハン", "餃子", "麻婆豆腐", "回鍋肉", "青椒肉絲", "酢豚", "炒め物", "中華スープ", "春巻き", "担々麺"},
	Other:    {"鍋", "バーベキュー", "お弁当", "デリバリー", "外食"},
}

var categoryColors = map[Category]string{
	Japanese: "#f57c00",
	Western:  "#388e3c",
	Chinese:  "#d32f2f",
	Other:    "#ad1457",
}

var ingredients = map[string][]string{
	"カレー":   {"牛肉", "玉ねぎ", "じゃがいも", "人参", "カレールー", "ご飯"},
	"肉じゃが":  {"牛肉", "じゃがいも", "玉ねぎ", "人参", "しらたき", "醤油", "みりん"},
	"親子丼":   {"鶏もも肉", "卵", "玉ねぎ", "ご飯", "めんつゆ"},
	"すき焼き":  {"牛肉", "豆腐", "白菜", "長ねぎ", "しらたき", "卵", "割り下"},
	"味噌汁":   {"豆腐", "わかめ", "長ねぎ", "味噌", "だし"},
	"焼き魚":   {"鮭", "大根", "醤油"},
	"天ぷら":   {"海老", "さつまいも", "なす", "天ぷら粉", "揚げ油"},
	"パスタ":   {"スパゲッティ", "にんにく", "オリーブオイル", "トマト缶"},
	"ハンバーグ": {"合いびき肉", "玉ねぎ", "卵", "パン粉", "牛乳"},
	"オムライス": {"卵", "鶏もも肉", "玉ねぎ", "ケチャップ", "ご飯"},
	"グラタン":  {"マカロニ", "鶏もも肉", "玉ねぎ", "牛乳", "バター", "小麦粉", "チーズ"},
	"サラダ":   {"レタス", "トマト", "きゅうり", "ドレッシング"},
	"ステーキ":  {"牛ステーキ肉", "にんにく", "塩", "こしょう"},
	"餃子":    {"豚ひき肉", "キャベツ", "にら", "餃子の皮", "にんにく", "しょうが"},
	"麻婆豆腐":  {"豆腐", "豚ひき肉", "長ねぎ", "豆板醤", "甜麺醤"},
	"チャーハン": {"ご飯", "卵", "長ねぎ", "焼豚"},
	"回鍋肉":   {"豚バラ肉", "キャベツ", "ピーマン", "甜麺醤"},
	"青椒肉絲":  {"豚肉", "ピーマン", "たけのこ", "オイスターソース"},
	"酢豚":    {"豚肉", "玉ねぎ", "ピーマン", "人参", "酢"},
	"鍋":     {"白菜", "長ねぎ", "豆腐", "しいたけ", "鶏もも肉"},
}

// Dishes returns the catalog dishes of c in table order.
func Dishes(c Category) []string {
	return append([]string(nil), categoryDishes[c]...)
}

// AllDishes returns every catalog dish in category order.
func AllDishes() []string {
	var out []string
	for _, c := range Categories {
		out = append(out, categoryDishes[c]...)
	}
	return out
}

// CategoryOf classifies a dish. A dish belongs to the first category in
// Categories holding a catalog entry that contains the name or is contained
// by it, compared case-insensitively. Blank names and misses fall back to
// Other.
func CategoryOf(name string) Category {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Other
	}
	for _, c := range Categories {
		for _, dish := range categoryDishes[c] {
			d := strings.ToLower(dish)
			if strings.Contains(d, n) || strings.Contains(n, d) {
				return c
			}
		}
	}
	return Other
}

// Color returns the display color of c as a hex string.
func (c Category) Color() string {
	if v, ok := categoryColors[c]; ok {
		return v
	}
	return categoryColors[Other]
}

// Ingredients returns the shopping ingredients for a dish, or nil when the
// dish has no known list.
func Ingredients(name string) []string {
	list, ok := ingredients[strings.TrimSpace(name)]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}
