package command

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gitlab.com/tozd/go/errors"
)

// Env is what a `when` condition can see about the editing target.
type Env struct {
	Format    string `expr:"format"`
	Language  string `expr:"language"`
	Selection string `expr:"selection"`
	Empty     bool   `expr:"empty"`
}

func compileWhen(when string) (*vm.Program, error) {
	if when == "" {
		return nil, nil
	}

	program, err := expr.Compile(when, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, errors.Errorf("compiling when %q: %w", when, err)
	}

	return program, nil
}

func runWhen(program *vm.Program, env Env) (bool, error) {
	if program == nil {
		return true, nil
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, errors.Errorf("evaluating when: %w", err)
	}

	ok, _ := out.(bool)
	return ok, nil
}
