// Package dispatch maps named commands onto planner operations so every
// front-end (terminal UI, MCP server) drives the planner the same way.
package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/planner"
)

// Command names.
const (
	CmdSet         = "set"
	CmdClear       = "clear"
	CmdMove        = "move"
	CmdSave        = "save"
	CmdLoad        = "load"
	CmdDeletePlan  = "delete-plan"
	CmdShopAdd     = "shop-add"
	CmdShopToggle  = "shop-toggle"
	CmdShopDelete  = "shop-delete"
	CmdShopDerive  = "shop-derive"
	CmdShopClean   = "shop-clean"
	CmdFavorite    = "favorite"
	CmdAddFavorite = "add-favorite"
	CmdWeekNext    = "week-next"
	CmdWeekPrev    = "week-prev"
	CmdWeekToday   = "week-today"
	CmdDarkMode    = "dark-mode"
)

// ErrUnknownCommand is returned by Dispatch for unregistered names.
var ErrUnknownCommand = errors.New("dispatch: unknown command")

// Level grades a Result message.
type Level string

const (
	Info Level = "info"
	Warn Level = "warn"
)

// Result is the outcome of a command. Benign no-ops are results, not errors.
type Result struct {
	Message string `json:"message,omitempty"`
	Changed bool   `json:"changed"`
	Level   Level  `json:"level"`

	// NeedsConfirm is set when the command was declined for lack of
	// confirmation; repeat it with confirm=true to proceed.
	NeedsConfirm bool `json:"needsConfirm,omitempty"`

	// Dirty reports whether the planner's last write failed once this
	// command finished.
	Dirty bool `json:"dirty,omitempty"`
}

func info(changed bool, format string, a ...any) Result {
	return Result{Message: fmt.Sprintf(format, a...), Changed: changed, Level: Info}
}

func warn(format string, a ...any) Result {
	return Result{Message: fmt.Sprintf(format, a...), Level: Warn}
}

// Args carries named string arguments.
type Args map[string]string

// String returns the trimmed value of name.
func (a Args) String(name string) string {
	return strings.TrimSpace(a[name])
}

// Bool parses name as a boolean; missing or malformed values are false.
func (a Args) Bool(name string) bool {
	v, err := strconv.ParseBool(a.String(name))
	return err == nil && v
}

// ID parses name as a snapshot or shopping item id.
func (a Args) ID(name string) (int64, error) {
	v := a.String(name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("dispatch: invalid %s %q", name, v)
	}
	return id, nil
}

// Param documents one argument of a command.
type Param struct {
	Name        string
	Description string
	Required    bool
	Enum        []string
}

// Command is one entry of the table.
type Command struct {
	Name        string
	Description string
	Params      []Param
	run         func(Args) (Result, error)
}

// Table is the command registry bound to one planner.
type Table struct {
	p    *planner.Planner
	cmds map[string]*Command

	// mu serializes commands so a result's Dirty belongs to its own write.
	mu sync.Mutex
}

// New builds the table for p.
func New(p *planner.Planner) *Table {
	t := &Table{p: p, cmds: make(map[string]*Command)}
	t.register()
	return t
}

// Planner returns the bound planner.
func (t *Table) Planner() *planner.Planner {
	return t.p
}

// Commands lists the registered commands by name.
func (t *Table) Commands() []*Command {
	out := make([]*Command, 0, len(t.cmds))
	for _, c := range t.cmds {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the named command.
func (t *Table) Lookup(name string) (*Command, bool) {
	c, ok := t.cmds[name]
	return c, ok
}

// Dispatch runs the named command. Missing required arguments and malformed
// values are errors; planner outcomes such as "nothing to save" are
// returned as warning results.
func (t *Table) Dispatch(name string, args Args) (Result, error) {
	c, ok := t.cmds[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	for _, p := range c.Params {
		if p.Required && args.String(p.Name) == "" {
			return Result{}, fmt.Errorf("dispatch: %s requires %s", name, p.Name)
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	res, err := c.run(args)
	if err != nil {
		return res, err
	}
	res.Dirty = t.p.Dirty()
	return res, nil
}

func (t *Table) add(c *Command) {
	t.cmds[c.Name] = c
}

var confirmParam = Param{Name: "confirm", Description: "Set to true to confirm a destructive action", Enum: []string{"true", "false"}}

// slotArg resolves either a full slot key ("monday-dinner") or a day, which
// means that day's dinner.
func slotArg(v string) (meal.SlotKey, error) {
	if d, m, err := meal.ParseKey(v); err == nil {
		return meal.Key(d, m), nil
	}
	d, err := meal.ParseDay(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", meal.ErrInvalidSlot, v)
	}
	return meal.Key(d, meal.Dinner), nil
}
