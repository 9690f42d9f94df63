package selfcheck

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"LinkedList/list"
)

var UnknownCheckErr = errors.New("unknown check")

// Check 一组固定的自检步骤
type Check struct {
	Name string
	run  func(r *Runner, l list.List[int]) list.List[int]
}

// Checks 返回全部自检，顺序固定
func Checks() []Check {
	return []Check{
		{Name: "prepend", run: checkPrepend},
		{Name: "append", run: checkAppend},
		{Name: "pull", run: checkPull},
		{Name: "pop", run: checkPop},
		{Name: "contains", run: checkContains},
		{Name: "length", run: checkLength},
	}
}

// Runner 运行自检并把 "got    should be    want" 写到 out
type Runner struct {
	out      io.Writer
	logger   *slog.Logger
	failures int
}

func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{out: out, logger: logger}
}

// Run 运行名字为 names 的自检，names 为空时运行全部
// 返回不符合预期的行数。
func (r *Runner) Run(names ...string) (int, error) {
	checks, err := selectChecks(names)
	if err != nil {
		return 0, err
	}

	r.failures = 0
	for _, c := range checks {
		r.logger.Info("running check", "check", c.Name)
		fmt.Fprintf(r.out, "Running test: %s\n", c.Name)

		l := c.run(r, buildTest())
		l.Free()

		fmt.Fprintln(r.out)
	}
	return r.failures, nil
}

func selectChecks(names []string) ([]Check, error) {
	all := Checks()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Check, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}

	selected := make([]Check, 0, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, UnknownCheckErr)
		}
		selected = append(selected, c)
	}
	return selected, nil
}

// expect 输出一行结果，不一致时计数并记录日志
func (r *Runner) expect(got, want string) {
	fmt.Fprintf(r.out, "%s    should be    %s\n", got, want)
	if got != want {
		r.failures++
		r.logger.Error("unexpected result", "got", got, "want", want)
	}
}

func buildTest() list.List[int] {
	l := list.New(42)
	l = l.Append(43)
	l = l.Append(44)
	return l
}

func checkPrepend(r *Runner, l list.List[int]) list.List[int] {
	// prepend 从单个节点开始，不使用公共的三节点链表
	l.Free()
	l = list.New(42)
	l = l.Prepend(43)
	l = l.Prepend(44)
	r.expect(l.String(), "(44)->(43)->(42)->END")
	return l
}

func checkAppend(r *Runner, l list.List[int]) list.List[int] {
	r.expect(l.String(), "(42)->(43)->(44)->END")
	return l
}

func checkPull(r *Runner, l list.List[int]) list.List[int] {
	steps := []struct{ value, render string }{
		{"42", "(43)->(44)->END"},
		{"43", "(44)->END"},
		{"44", list.End},
	}
	for _, step := range steps {
		var (
			v   int
			err error
		)
		l, v, err = l.PullFront()
		r.expect(renderValue(v, err), step.value)
		r.expect(l.String(), step.render)
	}
	return l
}

func checkPop(r *Runner, l list.List[int]) list.List[int] {
	steps := []struct{ value, render string }{
		{"44", "(42)->(43)->END"},
		{"43", "(42)->END"},
		{"42", list.End},
	}
	for _, step := range steps {
		var (
			v   int
			err error
		)
		l, v, err = l.PopBack()
		r.expect(renderValue(v, err), step.value)
		r.expect(l.String(), step.render)
	}
	return l
}

func checkContains(r *Runner, l list.List[int]) list.List[int] {
	r.expect(strconv.FormatBool(l.Contains(43)), "true")
	r.expect(strconv.FormatBool(l.Contains(90)), "false")
	return l
}

func checkLength(r *Runner, l list.List[int]) list.List[int] {
	r.expect(strconv.Itoa(l.Len()), "3")
	return l
}

func renderValue(v int, err error) string {
	if err != nil {
		return err.Error()
	}
	return strconv.Itoa(v)
}
