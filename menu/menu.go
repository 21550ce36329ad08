// Package menu implements a numbered text menu: items are listed as
// "N. label", the user types a number, and the matching action or nested
// menu runs. A top-level menu loops until "0. Exit" is chosen; a one-shot
// menu returns after a single dispatch.
package menu

import (
	"errors"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map"
)

const (
	exitKey    = 0
	exitLabel  = "Exit"
	promptText = "Your choice: "
	wrongText  = "Wrong choice, try again."
)

// Chooser supplies the user's numeric selections.
type Chooser interface {
	ReadInt() (int, error)
}

// Action is the handler bound to a menu item. A returned error stops the
// enclosing Run and is passed up to its caller.
type Action func() error

// item is either an action or a nested menu.
type item struct {
	label  string
	action Action
	sub    *Menu
}

// Menu is an ordered list of items. The zero value is not usable; call New.
type Menu struct {
	title   string
	oneTime bool
	items   *orderedmap.OrderedMap // int key (1-based) -> *item, insertion ordered
	onPick  func(title, label string)
}

// Option configures a Menu.
type Option func(*Menu)

// WithObserver registers fn to be called with the menu title and item label
// before every dispatch. Panics on nil fn (programmer error).
func WithObserver(fn func(title, label string)) Option {
	if fn == nil {
		panic("menu: WithObserver: fn must not be nil")
	}

	return func(m *Menu) { m.onPick = fn }
}

// New returns an empty menu with the given title.
func New(title string, opts ...Option) *Menu {
	m := &Menu{
		title:  title,
		items:  orderedmap.New(),
		onPick: func(string, string) {},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// Len returns the number of items, excluding Exit.
func (m *Menu) Len() int { return m.items.Len() }

// Add appends an action item and returns m for chaining.
func (m *Menu) Add(label string, action Action) *Menu {
	m.items.Set(m.items.Len()+1, &item{label: label, action: action})

	return m
}

// AddMenu appends an item that opens sub.
func (m *Menu) AddMenu(label string, sub *Menu) *Menu {
	m.items.Set(m.items.Len()+1, &item{label: label, sub: sub})

	return m
}

// OneTime makes m return after a single successful dispatch and hides Exit.
func (m *Menu) OneTime() *Menu {
	m.oneTime = true

	return m
}

// Render writes the numbered item list followed by the choice prompt.
func (m *Menu) Render(w io.Writer) error {
	for p := m.items.Oldest(); p != nil; p = p.Next() {
		if _, err := fmt.Fprintf(w, "%d. %s\n", p.Key, p.Value.(*item).label); err != nil {
			return err
		}
	}
	if !m.oneTime {
		if _, err := fmt.Fprintf(w, "%d. %s\n", exitKey, exitLabel); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, promptText)

	return err
}

// Run shows the menu and dispatches selections until Exit is chosen, a
// one-shot menu has dispatched once, or an action fails. End of input
// counts as Exit. A selection the chooser cannot parse is reported like
// an unknown number only when the error satisfies IsRecoverable.
func (m *Menu) Run(in Chooser, out io.Writer) error {
	for {
		if err := m.Render(out); err != nil {
			return err
		}
		key, err := in.ReadInt()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil && IsRecoverable(err):
			if _, werr := fmt.Fprintln(out, wrongText); werr != nil {
				return werr
			}
			continue
		case err != nil:
			return err
		}

		if key == exitKey && !m.oneTime {
			return nil
		}
		v, ok := m.items.Get(key)
		if !ok {
			if _, err := fmt.Fprintln(out, wrongText); err != nil {
				return err
			}
			continue
		}

		it := v.(*item)
		m.onPick(m.title, it.label)
		if it.sub != nil {
			err = it.sub.Run(in, out)
		} else {
			err = it.action()
		}
		if err != nil {
			return err
		}
		if m.oneTime {
			return nil
		}
	}
}

// recoverable is implemented by input errors after which the menu can
// simply ask again.
type recoverable interface {
	Recoverable() bool
}

// IsRecoverable reports whether err (or an error it wraps) declares itself
// recoverable.
func IsRecoverable(err error) bool {
	var r recoverable
	return errors.As(err, &r) && r.Recoverable()
}
