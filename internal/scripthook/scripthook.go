// Package scripthook runs a user-supplied JavaScript constraint on the
// target rectangle using Goja.
//
// A script defines
//
//	function constrain(target, parent) { ... return {x, y, w, h} }
//
// where both arguments are {x, y, w, h} objects (center and size). Fields
// missing from the returned object keep the target's value.
package scripthook

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/wesen/rectedit/pkg/rectedit"
)

// FuncName is the global function a script must define.
const FuncName = "constrain"

// ErrNoConstrain is returned when a script does not define FuncName.
var ErrNoConstrain = errors.New("script does not define " + FuncName + "(target, parent)")

// Hook is a compiled constraint script. It is not safe for concurrent use.
type Hook struct {
	name    string
	runtime *goja.Runtime
	fn      goja.Callable
	logger  *log.Logger

	// Calls and Failures count invocations for the status panel.
	Calls    int
	Failures int
}

// Compile evaluates src and looks up its constrain function. logger
// receives print() output and runtime failures; nil discards them.
func Compile(name, src string, logger *log.Logger) (*Hook, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	h := &Hook{name: name, runtime: goja.New(), logger: logger}

	h.runtime.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		h.logger.Printf("%s: %s", h.name, strings.Join(parts, " "))
		return goja.Undefined()
	})
	h.runtime.Set("clamp", func(call goja.FunctionCall) goja.Value {
		v := call.Argument(0).ToFloat()
		lo := call.Argument(1).ToFloat()
		hi := call.Argument(2).ToFloat()
		return h.runtime.ToValue(math.Max(lo, math.Min(hi, v)))
	})

	if _, err := h.runtime.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	fn, ok := goja.AssertFunction(h.runtime.Get(FuncName))
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNoConstrain)
	}
	h.fn = fn
	return h, nil
}

// Load reads and compiles the script at path.
func Load(path string, logger *log.Logger) (*Hook, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Compile(path, string(src), logger)
}

// Constrain runs the script. On any failure the target is returned
// unchanged and the error is logged.
func (h *Hook) Constrain(target, parent rectedit.Rect) rectedit.Rect {
	h.Calls++
	out, err := h.call(target, parent)
	if err != nil {
		h.Failures++
		h.logger.Printf("%s: %v", h.name, err)
		return target
	}
	return out
}

func (h *Hook) call(target, parent rectedit.Rect) (out rectedit.Rect, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", FuncName, r)
		}
	}()

	val, err := h.fn(goja.Undefined(), h.toJS(target), h.toJS(parent))
	if err != nil {
		return target, err
	}
	if goja.IsUndefined(val) || goja.IsNull(val) {
		return target, fmt.Errorf("%s returned %v", FuncName, val)
	}
	m, ok := val.Export().(map[string]interface{})
	if !ok {
		return target, fmt.Errorf("%s must return an object, got %T", FuncName, val.Export())
	}

	out = target
	fields := []struct {
		key string
		dst *float64
	}{
		{"x", &out.Position.X},
		{"y", &out.Position.Y},
		{"w", &out.Size.X},
		{"h", &out.Size.Y},
	}
	for _, f := range fields {
		raw, present := m[f.key]
		if !present {
			continue
		}
		v, ok := toFloat(raw)
		if !ok {
			return target, fmt.Errorf("field %q is not a number: %v", f.key, raw)
		}
		*f.dst = v
	}
	if !out.Position.Finite() || !out.Size.Finite() {
		return target, fmt.Errorf("%s returned non-finite rect %+v", FuncName, out)
	}
	return out, nil
}

func (h *Hook) toJS(r rectedit.Rect) goja.Value {
	return h.runtime.ToValue(map[string]interface{}{
		"x": r.Position.X,
		"y": r.Position.Y,
		"w": r.Size.X,
		"h": r.Size.Y,
	})
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
