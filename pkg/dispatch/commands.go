package dispatch

import (
	"errors"

	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/viewmodel"
)

func (t *Table) register() {
	p := t.p

	t.add(&Command{
		Name:        CmdSet,
		Description: "Set or clear the dish for a day",
		Params: []Param{
			{Name: "day", Description: "Day (monday..sunday, 月..日) or slot key", Required: true},
			{Name: "dish", Description: "Dish name; empty clears the slot"},
		},
		run: func(a Args) (Result, error) {
			key, err := slotArg(a.String("day"))
			if err != nil {
				return Result{}, err
			}
			dish := a.String("dish")
			if err := p.SetSlot(key.Day(), key.MealType(), dish); err != nil {
				return Result{}, err
			}
			if dish == "" {
				return info(true, "%sの献立を削除しました", key.Day().LongLabel()), nil
			}
			return info(true, "%sに「%s」を設定しました", key.Day().LongLabel(), dish), nil
		},
	})

	t.add(&Command{
		Name:        CmdClear,
		Description: "Clear every dinner of the displayed week",
		Params:      []Param{confirmParam},
		run: func(a Args) (Result, error) {
			if err := p.ClearAll(a.Bool("confirm")); err != nil {
				return confirmation(err, "全ての夕食を削除しますか？")
			}
			return info(true, "全ての夕食を削除しました"), nil
		},
	})

	t.add(&Command{
		Name:        CmdMove,
		Description: "Move a dish to another day, swapping when the target is occupied",
		Params: []Param{
			{Name: "from", Description: "Source day or slot key", Required: true},
			{Name: "to", Description: "Target day or slot key", Required: true},
		},
		run: func(a Args) (Result, error) {
			src, err := slotArg(a.String("from"))
			if err != nil {
				return Result{}, err
			}
			dst, err := slotArg(a.String("to"))
			if err != nil {
				return Result{}, err
			}
			if !p.Move(src, dst) {
				return warn("移動する献立がありません"), nil
			}
			return info(true, "%sから%sへ移動しました", src.Day().LongLabel(), dst.Day().LongLabel()), nil
		},
	})

	t.add(&Command{
		Name:        CmdSave,
		Description: "Save the displayed week to history",
		run: func(Args) (Result, error) {
			if _, err := p.SaveSnapshot(); err != nil {
				if errors.Is(err, planner.ErrNothingToSave) {
					return warn("保存する献立がありません。"), nil
				}
				return Result{}, err
			}
			return info(true, "献立を保存しました！"), nil
		},
	})

	t.add(&Command{
		Name:        CmdLoad,
		Description: "Replace the displayed week with a saved plan",
		Params:      []Param{{Name: "id", Description: "History entry id", Required: true}, confirmParam},
		run: func(a Args) (Result, error) {
			id, err := a.ID("id")
			if err != nil {
				return Result{}, err
			}
			ok, err := p.LoadSnapshot(id, a.Bool("confirm"))
			if err != nil {
				return confirmation(err, "現在の献立が上書きされます。よろしいですか？")
			}
			if !ok {
				return warn("献立 %d が見つかりません", id), nil
			}
			return info(true, "献立を読み込みました"), nil
		},
	})

	t.add(&Command{
		Name:        CmdDeletePlan,
		Description: "Delete a saved plan from history",
		Params:      []Param{{Name: "id", Description: "History entry id", Required: true}, confirmParam},
		run: func(a Args) (Result, error) {
			id, err := a.ID("id")
			if err != nil {
				return Result{}, err
			}
			ok, err := p.DeleteSnapshot(id, a.Bool("confirm"))
			if err != nil {
				return confirmation(err, "この献立を削除しますか？")
			}
			if !ok {
				return warn("献立 %d が見つかりません", id), nil
			}
			return info(true, "献立を削除しました"), nil
		},
	})

	t.add(&Command{
		Name:        CmdShopAdd,
		Description: "Add an item to the shopping list",
		Params:      []Param{{Name: "text", Description: "Item text", Required: true}},
		run: func(a Args) (Result, error) {
			it, ok := p.AddShoppingItem(a.String("text"))
			if !ok {
				return warn("買い物リストに追加する内容がありません"), nil
			}
			return info(true, "「%s」を買い物リストに追加しました", it.Text), nil
		},
	})

	t.add(&Command{
		Name:        CmdShopToggle,
		Description: "Mark a shopping item done or not done",
		Params:      []Param{{Name: "id", Description: "Shopping item id", Required: true}},
		run: func(a Args) (Result, error) {
			id, err := a.ID("id")
			if err != nil {
				return Result{}, err
			}
			if !p.ToggleShoppingItem(id) {
				return warn("項目 %d が見つかりません", id), nil
			}
			return info(true, "項目 %d を更新しました", id), nil
		},
	})

	t.add(&Command{
		Name:        CmdShopDelete,
		Description: "Remove a shopping item",
		Params:      []Param{{Name: "id", Description: "Shopping item id", Required: true}},
		run: func(a Args) (Result, error) {
			id, err := a.ID("id")
			if err != nil {
				return Result{}, err
			}
			if !p.DeleteShoppingItem(id) {
				return warn("項目 %d が見つかりません", id), nil
			}
			return info(true, "項目 %d を削除しました", id), nil
		},
	})

	t.add(&Command{
		Name:        CmdShopDerive,
		Description: "Add the ingredients of the planned dishes to the shopping list",
		run: func(Args) (Result, error) {
			n, err := p.DeriveShoppingItems()
			if errors.Is(err, planner.ErrNothingToAdd) {
				return warn("追加する材料がありません"), nil
			}
			if err != nil {
				return Result{}, err
			}
			return info(true, "%d件の材料を買い物リストに追加しました", n), nil
		},
	})

	t.add(&Command{
		Name:        CmdShopClean,
		Description: "Remove completed shopping items",
		run: func(Args) (Result, error) {
			n := p.ClearCompletedShoppingItems()
			if n == 0 {
				return warn("完了した項目がありません"), nil
			}
			return info(true, "完了した%d件を削除しました", n), nil
		},
	})

	t.add(&Command{
		Name:        CmdFavorite,
		Description: "Toggle a dish in favorites",
		Params:      []Param{{Name: "name", Description: "Dish name", Required: true}},
		run: func(a Args) (Result, error) {
			name := a.String("name")
			if p.ToggleFavorite(name) {
				return info(true, "「%s」をお気に入りに追加しました", name), nil
			}
			return info(true, "「%s」をお気に入りから外しました", name), nil
		},
	})

	t.add(&Command{
		Name:        CmdAddFavorite,
		Description: "Place a dish in the first empty day of the week",
		Params:      []Param{{Name: "name", Description: "Dish name", Required: true}},
		run: func(a Args) (Result, error) {
			day, err := p.AddToFirstEmpty(a.String("name"))
			if errors.Is(err, planner.ErrAllSlotsOccupied) {
				return warn("空いている日がありません"), nil
			}
			if err != nil {
				return Result{}, err
			}
			return info(true, "%sに「%s」を追加しました", day.LongLabel(), a.String("name")), nil
		},
	})

	week := func(move func()) func(Args) (Result, error) {
		return func(Args) (Result, error) {
			move()
			return info(true, "%s", viewmodel.Week(p, p.Now()).Range), nil
		}
	}
	t.add(&Command{Name: CmdWeekNext, Description: "Show the next week", run: week(func() { p.ChangeWeek(1) })})
	t.add(&Command{Name: CmdWeekPrev, Description: "Show the previous week", run: week(func() { p.ChangeWeek(-1) })})
	t.add(&Command{Name: CmdWeekToday, Description: "Return to the current week", run: week(p.GoToCurrentWeek)})

	t.add(&Command{
		Name:        CmdDarkMode,
		Description: "Set or toggle dark mode",
		Params:      []Param{{Name: "value", Description: "on or off; empty toggles", Enum: []string{"on", "off"}}},
		run: func(a Args) (Result, error) {
			var on bool
			switch a.String("value") {
			case "on", "true":
				on = true
				p.SetDarkMode(true)
			case "off", "false":
				p.SetDarkMode(false)
			case "":
				on = p.ToggleDarkMode()
			default:
				return Result{}, errors.New("dispatch: dark-mode value must be on or off")
			}
			if on {
				return info(true, "ダークモード: オン"), nil
			}
			return info(true, "ダークモード: オフ"), nil
		},
	})
}

func confirmation(err error, question string) (Result, error) {
	if errors.Is(err, planner.ErrNotConfirmed) {
		res := warn("%s", question)
		res.NeedsConfirm = true
		return res, nil
	}
	return Result{}, err
}

// compile-time check that the planner satisfies the view source.
var _ viewmodel.Source = (*planner.Planner)(nil)
