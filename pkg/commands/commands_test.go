package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("kondate %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func setupEnv(t *testing.T, driver string) {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	t.Setenv("KONDATE_CONFIG_PATH", dir)
	t.Setenv("KONDATE_PATH", dir+"/data")
	t.Setenv("KONDATE_DRIVER", driver)
	t.Setenv("KONDATE_LOG_LEVEL", "error")
}

type weekJSON struct {
	Filled int `json:"filled"`
	Days   []struct {
		Day  string `json:"day"`
		Dish string `json:"dish"`
	} `json:"days"`
}

func readWeek(t *testing.T, args ...string) weekJSON {
	t.Helper()
	out := execute(t, append([]string{"week", "--json"}, args...)...)
	var w weekJSON
	if err := json.Unmarshal([]byte(out), &w); err != nil {
		t.Fatalf("decode week %q: %v", out, err)
	}
	return w
}

func TestPlanAcrossInvocations(t *testing.T) {
	for _, driver := range []string{"diskv", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			setupEnv(t, driver)
			if driver == "sqlite" {
				t.Setenv("KONDATE_PATH", t.TempDir()+"/kondate.db")
			}

			execute(t, "set", "monday", "カレー")
			execute(t, "set", "金", "寿司")
			execute(t, "move", "monday", "friday")

			w := readWeek(t)
			if w.Filled != 2 {
				t.Fatalf("filled = %d, want 2", w.Filled)
			}
			if w.Days[0].Dish != "寿司" || w.Days[4].Dish != "カレー" {
				t.Fatalf("move did not swap: %+v", w.Days)
			}

			execute(t, "clear", "--yes")
			if w := readWeek(t); w.Filled != 0 {
				t.Fatalf("filled after clear = %d", w.Filled)
			}
		})
	}
}

func TestWeeksArePartitioned(t *testing.T) {
	setupEnv(t, "diskv")
	execute(t, "set", "tuesday", "餃子", "--week", "1")
	if w := readWeek(t); w.Filled != 0 {
		t.Fatalf("this week filled = %d, want 0", w.Filled)
	}
	if w := readWeek(t, "--week", "1"); w.Filled != 1 {
		t.Fatalf("next week filled = %d, want 1", w.Filled)
	}
}

func TestClearWithoutConfirmationFails(t *testing.T) {
	setupEnv(t, "diskv")
	execute(t, "set", "monday", "カレー")

	cmd := New()
	var out bytes.Buffer
	cmd.SetArgs([]string{"clear"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("n\n"))
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected clear to be declined")
	}
	if w := readWeek(t); w.Filled != 1 {
		t.Fatalf("filled = %d, want 1", w.Filled)
	}
}

func TestShoppingFlow(t *testing.T) {
	setupEnv(t, "diskv")
	execute(t, "set", "monday", "カレー")
	execute(t, "shop", "derive")
	execute(t, "shop", "add", "牛乳")

	out := execute(t, "shop", "--json")
	var items []struct {
		ID            int64  `json:"id"`
		Text          string `json:"text"`
		AutoGenerated bool   `json:"autoGenerated"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(items) != 7 {
		t.Fatalf("items = %d, want 7", len(items))
	}

	execute(t, "shop", "toggle", jsonID(items[0].ID))
	if out := execute(t, "shop", "clean"); !strings.Contains(out, "1") {
		t.Fatalf("clean output %q", out)
	}
}

func TestHistoryFlow(t *testing.T) {
	setupEnv(t, "diskv")
	execute(t, "set", "monday", "カレー")
	execute(t, "save")

	out := execute(t, "history", "--json")
	var entries []struct {
		ID    int64 `json:"id"`
		Count int   `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(entries) != 1 || entries[0].Count != 1 {
		t.Fatalf("entries = %+v", entries)
	}

	execute(t, "load", jsonID(entries[0].ID), "--week", "1", "--yes")
	if w := readWeek(t, "--week", "1"); w.Filled != 1 {
		t.Fatalf("loaded week filled = %d, want 1", w.Filled)
	}

	execute(t, "forget", jsonID(entries[0].ID), "--yes")
	if out := execute(t, "history", "--json"); strings.TrimSpace(out) != "[]" {
		t.Fatalf("history after forget = %s", out)
	}
}

func TestSearchAndCategory(t *testing.T) {
	setupEnv(t, "memory")
	if out := execute(t, "search", "カレ"); !strings.Contains(out, "カレー") {
		t.Fatalf("search output %q", out)
	}
	if out := execute(t, "category", "麻婆豆腐"); !strings.Contains(out, "中華") {
		t.Fatalf("category output %q", out)
	}
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
