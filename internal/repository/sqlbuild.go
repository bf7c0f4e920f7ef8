package repository

import (
	"strconv"
	"strings"
)

// query собирает позиционные параметры ($1, $2, ...) для SET и WHERE.
type query struct {
	args []any
}

func (q *query) bind(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

// assignments накапливает пары "колонка = $n" для UPDATE ... SET.
type assignments struct {
	q    *query
	cols []string
}

func (a *assignments) set(col string, v any) {
	a.cols = append(a.cols, col+" = "+a.q.bind(v))
}

func (a *assignments) String() string {
	return strings.Join(a.cols, ", ")
}

// predicate накапливает условия равенства, объединённые через AND.
type predicate struct {
	q     *query
	conds []string
}

func (p *predicate) eq(col string, v any) *predicate {
	p.conds = append(p.conds, col+" = "+p.q.bind(v))
	return p
}

func (p *predicate) String() string {
	if len(p.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(p.conds, " AND ")
}
