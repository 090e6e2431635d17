// Released under an MIT license. See LICENSE.

// Package engine evaluates ply commands against a workspace of named objects.
package engine

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"ply"
	"ply/internal/common/interface/literal"
	"ply/internal/common/interface/object"
	"ply/internal/common/interface/value"
	"ply/internal/common/type/boolean"
	"ply/internal/common/type/dict"
	"ply/internal/common/type/node"
	"ply/internal/common/type/num"
	"ply/internal/common/type/str"
	"ply/internal/common/validate"
	"ply/internal/reader"
	"ply/internal/reader/token"
	"ply/internal/system/fixture"
)

const usage = `commands:
  new NAME [PARENT]        create an object, optionally with a prototype
  attach NAME PARENT...    add parents to an object
  parents NAME             list an object's parents, highest priority first
  plied NAME               true if an object has an intermediary installed
  set NAME KEY VALUE       set an own property (value: number, "string", true, false, or object name)
  get NAME KEY             look a property up, delegating across parents
  has NAME KEY             true if a property resolves
  del NAME KEY             delete an own property
  keys NAME [PATTERN]      list own property names, optionally filtered
  proto NAME               show an object's immediate prototype
  dump NAME                show an object's properties and parents
  load FILE                build an object graph from a YAML fixture
  help                     show this text
  exit                     leave ply
`

// T (engine) holds the workspace and evaluates commands against it.
type T struct {
	objects map[string]object.I
	names   map[object.I]string
	out     io.Writer
	done    bool
}

type engine = T

// New creates a new engine writing responses to out.
func New(out io.Writer) *engine {
	return &engine{
		objects: map[string]object.I{},
		names:   map[object.I]string{},
		out:     out,
	}
}

// Done returns true once an exit command has been evaluated.
func (e *engine) Done() bool {
	return e.done
}

// Evaluate runs one command line. Problems are reported to the
// engine's writer; they never escape.
func (e *engine) Evaluate(line string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(e.out, "error: %v\n", r)
		}
	}()

	ts, err := reader.Scan(line)
	if err != nil {
		panic(err.Error())
	}

	if len(ts) == 0 {
		return
	}

	if ts[0].Kind != token.Word {
		panic("a command must start with a verb")
	}

	verb, args := ts[0].Text, ts[1:]

	f, ok := verbs[verb]
	if !ok {
		panic("unknown command: " + verb)
	}

	f(e, verb, args)
}

//nolint:gochecknoglobals
var verbs = map[string]func(e *engine, verb string, args []token.T){
	"attach":  attach,
	"del":     del,
	"dump":    dump,
	"exit":    exit,
	"get":     get,
	"has":     has,
	"help":    help,
	"keys":    keys,
	"load":    load,
	"new":     create,
	"parents": parents,
	"plied":   plied,
	"proto":   proto,
	"set":     set,
}

func attach(e *engine, verb string, args []token.T) {
	validate.Variadic(verb, len(args), 2)

	host := e.object(args[0])

	ps := make([]object.I, 0, len(args)-1)
	for _, a := range args[1:] {
		ps = append(ps, e.object(a))
	}

	ply.Attach(host, ps...)
}

func create(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 2)

	name := word(args[0])

	var p object.I
	if len(args) == 2 {
		p = e.object(args[1])
	}

	e.register(name, dict.New(p))
}

func del(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 2, 2)

	e.print(boolean.Bool(e.object(args[0]).Delete(word(args[1]))))
}

func dump(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 1)

	host := e.object(args[0])

	fmt.Fprintf(e.out, "%s: %s\n", word(args[0]), host.Name())
	fmt.Fprintf(e.out, "  proto: %s\n", e.render(host.Prototype()))

	if p := host.Prototype(); ply.Is(p) {
		fmt.Fprintf(e.out, "  parents: %s\n", e.renderAll(node.To(p).Parents()))
	}

	for _, k := range host.Keys() {
		v, _ := host.GetOwn(k)
		fmt.Fprintf(e.out, "  %s: %s\n", k, e.render(v))
	}
}

func exit(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 0, 0)

	e.done = true
}

func get(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 2, 2)

	v, ok := e.object(args[0]).Get(word(args[1]))
	if !ok {
		fmt.Fprintln(e.out, "undefined")

		return
	}

	fmt.Fprintln(e.out, e.render(v))
}

func has(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 2, 2)

	e.print(boolean.Bool(e.object(args[0]).Has(word(args[1]))))
}

func help(e *engine, verb string, args []token.T) {
	fmt.Fprint(e.out, usage)
}

func keys(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 2)

	ks := e.object(args[0]).Keys()

	if len(args) == 2 {
		pattern := args[1].Text

		matched := make([]string, 0, len(ks))

		for _, k := range ks {
			ok, err := adapted.Match(pattern, k)
			if err != nil {
				panic(err.Error())
			}

			if ok {
				matched = append(matched, k)
			}
		}

		ks = matched
	}

	fmt.Fprintln(e.out, strings.Join(ks, " "))
}

func load(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 1)

	f, err := os.Open(args[0].Text)
	if err != nil {
		panic(err.Error())
	}
	defer f.Close()

	entries, err := fixture.Load(f, func(name string) (object.I, bool) {
		o, ok := e.objects[name]

		return o, ok
	})
	if err != nil {
		panic(err.Error())
	}

	for _, entry := range entries {
		e.register(entry.Name, entry.Object)
	}
}

func parents(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 1)

	p := e.object(args[0]).Prototype()

	if ply.Is(p) {
		fmt.Fprintln(e.out, e.renderAll(node.To(p).Parents()))

		return
	}

	fmt.Fprintln(e.out, e.render(p))
}

func plied(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 1)

	e.print(boolean.Bool(ply.Is(e.object(args[0]).Prototype())))
}

func proto(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 1, 1)

	fmt.Fprintln(e.out, e.render(e.object(args[0]).Prototype()))
}

func set(e *engine, verb string, args []token.T) {
	validate.Fixed(verb, len(args), 3, 3)

	e.object(args[0]).Set(word(args[1]), e.value(args[2]))
}

// Names returns the names in the workspace, sorted.
func (e *engine) Names() []string {
	names := make([]string, 0, len(e.objects))
	for name := range e.objects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// object resolves a word token naming a workspace object.
func (e *engine) object(t token.T) object.I {
	name := word(t)

	o, ok := e.objects[name]
	if !ok {
		panic("unknown object: " + name)
	}

	return o
}

func (e *engine) print(v value.I) {
	fmt.Fprintln(e.out, e.render(v))
}

func (e *engine) register(name string, o object.I) {
	e.objects[name] = o
	e.names[o] = name
}

// render produces the display form of a value: workspace objects by
// name, intermediaries by their metadata tag, literals as literals.
func (e *engine) render(v value.I) string {
	if v == nil {
		return "null"
	}

	if o, ok := v.(object.I); ok {
		if name, ok := e.names[o]; ok {
			return name
		}

		if ply.Is(o) {
			if meta, ok := node.To(o).GetOwn(ply.Bookkeeping()[1]); ok {
				if s, ok := meta.(fmt.Stringer); ok {
					return s.String()
				}
			}
		}

		return "<" + o.Name() + ">"
	}

	if l, ok := v.(literal.I); ok {
		return l.Literal()
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return "<" + v.Name() + ">"
}

func (e *engine) renderAll(os []object.I) string {
	names := make([]string, len(os))
	for i, o := range os {
		names[i] = e.render(o)
	}

	return strings.Join(names, " ")
}

// value interprets a token as a property value: numbers and strings
// directly, true and false as booleans, and any other word as the
// workspace object it names.
func (e *engine) value(t token.T) value.I {
	switch t.Kind {
	case token.Number:
		return num.New(t.Text)
	case token.String:
		return str.New(t.Text)
	default:
		if t.Text == "true" || t.Text == "false" {
			return boolean.New(t.Text)
		}

		return e.object(t)
	}
}

func word(t token.T) string {
	if t.Kind != token.Word {
		panic("expected a name, passed " + t.Text)
	}

	return t.Text
}
