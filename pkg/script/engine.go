// Package script provides the Lisp configuration surface for
// floorgen. It wraps zygomys in a sandboxed environment and produces
// a floor.Config from user source code.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/floorgen/pkg/floor"
)

// EvalError represents a non-fatal error encountered during
// evaluation, such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for floor scripts. It is safe
// for concurrent use; each call to Evaluate creates a fresh sandboxed
// environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate takes Lisp source code and produces a floor configuration.
// Each call creates a fresh zygomys sandbox for deterministic
// evaluation.
//
// Return semantics:
//   - On success: returns config + nil errors + nil error
//   - On parse/eval failure: returns zero config + eval errors + nil error
//   - On fatal failure (timeout, panic): returns zero + nil + error
func (e *Engine) Evaluate(source string) (floor.Config, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		cfg, evalErrs, err := e.evaluate(source)
		ch <- evalResult{config: cfg, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (floor.Config, []EvalError, error) {
	// Empty source is a valid program that produces the defaults.
	if strings.TrimSpace(source) == "" {
		return floor.DefaultConfig(), nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem
	// or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	st := &scriptState{cfg: floor.DefaultConfig()}
	registerBuiltins(env, st)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return floor.Config{}, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return floor.Config{}, parseZygomysError(err), nil
	}

	if !st.defined {
		return floor.Config{}, []EvalError{{
			Message: "script defines no floor; call wood-floor or tile-floor",
		}}, nil
	}
	return st.cfg, nil, nil
}

// linePattern matches zygomys error messages that include
// "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more
// EvalError values, extracting line numbers where the message carries
// them.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
