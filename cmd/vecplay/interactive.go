package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/alloc"
	"github.com/wippyai/vecmem/vector"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cmdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyWindow = 12

type entry struct {
	cmd   string
	out   string
	isErr bool
}

// workbenchModel drives one live vector against a track -> fault -> quota
// -> heap allocator chain. Commands are synchronous, so there are no
// asynchronous messages beyond the input blink.
type workbenchModel struct {
	vec     *vector.Vector[int64]
	track   *alloc.Track[int64]
	fault   *alloc.Fault[int64]
	quota   *alloc.Quota[int64]
	budget  datasize.ByteSize
	input   textinput.Model
	history []entry
}

func newWorkbenchModel(budget datasize.ByteSize) *workbenchModel {
	var base vecmem.Allocator[int64] = alloc.NewHeap[int64]()
	var quota *alloc.Quota[int64]
	if budget > 0 {
		quota = alloc.NewQuota[int64](base, budget)
		base = quota
	}
	fault := alloc.NewFault[int64](base)
	track := alloc.NewTrack[int64](fault)

	ti := textinput.New()
	ti.Placeholder = "push 42"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &workbenchModel{
		vec:    vector.NewIn[int64](track),
		track:  track,
		fault:  fault,
		quota:  quota,
		budget: budget,
		input:  ti,
	}
}

func (m *workbenchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *workbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.vec.Free()
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				m.vec.Free()
				return m, tea.Quit
			}
			m.history = append(m.history, m.execute(line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *workbenchModel) execute(line string) entry {
	fields := strings.Fields(line)
	op, args := fields[0], fields[1:]

	fail := func(format string, a ...any) entry {
		return entry{cmd: line, out: fmt.Sprintf(format, a...), isErr: true}
	}
	ok := func(format string, a ...any) entry {
		return entry{cmd: line, out: fmt.Sprintf(format, a...)}
	}

	switch op {
	case "push":
		if len(args) == 0 {
			return fail("usage: push <value>...")
		}
		values, err := parseValues(args)
		if err != nil {
			return fail("%v", err)
		}
		for _, x := range values {
			if err := m.vec.Push(x); err != nil {
				return fail("%v", err)
			}
		}
		return ok("pushed %d value(s)", len(values))

	case "append":
		values, err := parseValues(args)
		if err != nil {
			return fail("%v", err)
		}
		if err := m.vec.Append(values...); err != nil {
			return fail("%v", err)
		}
		return ok("appended %d value(s)", len(values))

	case "pop":
		x, popped := m.vec.Pop()
		if !popped {
			return fail("vector is empty")
		}
		return ok("popped %d", x)

	case "fill":
		if len(args) != 2 {
			return fail("usage: fill <count> <value>")
		}
		n, err1 := strconv.Atoi(args[0])
		x, err2 := strconv.ParseInt(args[1], 10, 64)
		if err1 != nil || err2 != nil {
			return fail("fill wants integer count and value")
		}
		nv, err := vector.FillIn[int64](m.track, n, x)
		if err != nil {
			return fail("%v", err)
		}
		m.vec.Free()
		m.vec = nv
		return ok("filled %d x %d", n, x)

	case "insert":
		if len(args) < 2 {
			return fail("usage: insert <index> <value>...")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("insert wants an integer index")
		}
		values, err := parseValues(args[1:])
		if err != nil {
			return fail("%v", err)
		}
		if err := m.vec.Insert(i, values...); err != nil {
			return fail("%v", err)
		}
		return ok("inserted %d value(s) at %d", len(values), i)

	case "erase":
		if len(args) != 1 {
			return fail("usage: erase <index>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("erase wants an integer index")
		}
		x, erased := m.vec.Erase(i)
		if !erased {
			return fail("index %d out of range", i)
		}
		return ok("erased %d", x)

	case "at":
		if len(args) != 1 {
			return fail("usage: at <index>")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("at wants an integer index")
		}
		x, err := m.vec.At(i)
		if err != nil {
			return fail("%v", err)
		}
		return ok("at(%d) = %d", i, x)

	case "set":
		if len(args) != 2 {
			return fail("usage: set <index> <value>")
		}
		i, err1 := strconv.Atoi(args[0])
		x, err2 := strconv.ParseInt(args[1], 10, 64)
		if err1 != nil || err2 != nil {
			return fail("set wants integer index and value")
		}
		if err := m.vec.SetAt(i, x); err != nil {
			return fail("%v", err)
		}
		return ok("set [%d] = %d", i, x)

	case "reserve":
		if len(args) != 1 {
			return fail("usage: reserve <capacity>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("reserve wants an integer capacity")
		}
		if err := m.vec.Reserve(n); err != nil {
			return fail("%v", err)
		}
		return ok("capacity is %d", m.vec.Cap())

	case "shrink":
		if err := m.vec.ShrinkToFit(); err != nil {
			return fail("%v", err)
		}
		return ok("capacity is %d", m.vec.Cap())

	case "resize":
		if len(args) < 1 || len(args) > 2 {
			return fail("usage: resize <length> [value]")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("resize wants an integer length")
		}
		var x int64
		if len(args) == 2 {
			if x, err = strconv.ParseInt(args[1], 10, 64); err != nil {
				return fail("resize wants an integer fill value")
			}
		}
		if err := m.vec.Resize(n, x); err != nil {
			return fail("%v", err)
		}
		return ok("length is %d", m.vec.Len())

	case "clear":
		m.vec.Clear()
		return ok("cleared, capacity kept at %d", m.vec.Cap())

	case "free":
		m.vec.Free()
		return ok("storage returned")

	case "failnext":
		if len(args) != 1 {
			return fail("usage: failnext <count>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("failnext wants an integer count")
		}
		m.fault.FailNext(n)
		return ok("next %d allocation(s) will fail", n)

	case "failafter":
		if len(args) != 1 {
			return fail("usage: failafter <count>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fail("failafter wants an integer count")
		}
		m.fault.FailAfter(n)
		return ok("allocations fail after %d more", n)

	case "values":
		s := m.vec.Slice()
		if len(s) == 0 {
			return ok("[]")
		}
		parts := make([]string, len(s))
		for i, x := range s {
			parts[i] = strconv.FormatInt(x, 10)
		}
		return ok("[%s]", strings.Join(parts, " "))

	case "quota":
		if m.quota == nil {
			return fail("no quota configured (start with -quota)")
		}
		return ok("%s of %s in use", m.quota.Used().HumanReadable(), m.budget.HumanReadable())

	case "check":
		if err := m.track.Check(); err != nil {
			return fail("%v", err)
		}
		return ok("no leaks, no double frees")

	case "help":
		return ok("%s", helpText)

	default:
		return fail("unknown command %q (try help)", op)
	}
}

func parseValues(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, a := range args {
		x, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		values[i] = x
	}
	return values, nil
}

const helpText = `push <v>...          append values one by one
append <v>...        append values in one operation
pop                  remove and show the last value
fill <n> <v>         rebuild as n copies of v
insert <i> <v>...    insert values before index i
erase <i>            remove the value at index i
at <i> / set <i> <v> checked element access
reserve <n>          raise capacity to n
shrink               drop capacity to the live length
resize <n> [v]       grow with v (default 0) or truncate
clear / free         drop values / return storage
failnext <n>         fail the next n allocations
failafter <n>        fail every allocation after n more
values / check       show contents / run the leak check
quota                show byte budget usage
quit                 free the vector and exit`

func gaugeBar(used, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := used * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m *workbenchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("vecmem workbench"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(m.allocatorSummary()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("len %s / cap %s  %s\n",
		valueStyle.Render(strconv.Itoa(m.vec.Len())),
		valueStyle.Render(strconv.Itoa(m.vec.Cap())),
		gaugeBar(m.vec.Len(), m.vec.Cap(), 24)))

	stats := m.track.Stats()
	b.WriteString(fmt.Sprintf("allocs %s  frees %s  live %d (%s)",
		humanize.Comma(int64(stats.Allocs)),
		humanize.Comma(int64(stats.Frees)),
		stats.Live,
		humanize.Bytes(stats.LiveBytes)))
	if stats.DoubleFrees > 0 {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(fmt.Sprintf("double frees %d", stats.DoubleFrees)))
	}
	if m.quota != nil {
		b.WriteString(fmt.Sprintf("  quota %s of %s",
			m.quota.Used().HumanReadable(), m.budget.HumanReadable()))
	}
	b.WriteString("\n\n")

	if len(m.history) == 0 {
		b.WriteString(helpStyle.Render("Type a command to begin (help lists them)."))
		b.WriteString("\n")
	}
	start := 0
	if len(m.history) > historyWindow {
		start = len(m.history) - historyWindow
	}
	for _, e := range m.history[start:] {
		b.WriteString(cmdStyle.Render("> " + e.cmd))
		b.WriteString("\n")
		if e.isErr {
			b.WriteString(errorStyle.Render("  " + e.out))
		} else {
			b.WriteString(resultStyle.Render("  " + e.out))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • help commands • ctrl+c quit"))

	return b.String()
}

func (m *workbenchModel) allocatorSummary() string {
	parts := []string{"track", "fault"}
	if m.quota != nil {
		parts = append(parts, "quota "+m.budget.HumanReadable())
	}
	parts = append(parts, "heap")
	return strings.Join(parts, " → ")
}

func runInteractive(budget datasize.ByteSize) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newWorkbenchModel(budget), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
