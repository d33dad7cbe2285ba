// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/report"
)

// emit prints v as JSON with --json, otherwise through text.
func (a *app) emit(v any, text func(w io.Writer) error) error {
	if a.jsonOut {
		return report.WriteJSON(a.out, v)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	if err := text(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func ints(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}

func cells(cs []grid.Cell) string {
	nums := make([]int, len(cs))
	for i, c := range cs {
		nums[i] = int(c)
	}
	return ints(nums)
}

// overrides copies the values of flags the user set into config fields.
// The first lookup error is kept in err and later calls become no-ops.
type overrides struct {
	fl  *pflag.FlagSet
	err error
}

func (o *overrides) intFlag(name string, dst *int) {
	if o.err != nil || !o.fl.Changed(name) {
		return
	}
	v, err := o.fl.GetInt(name)
	if err != nil {
		o.err = fmt.Errorf("flag --%s: %w", name, err)
		return
	}
	*dst = v
}

func (o *overrides) stringFlag(name string, dst *string) {
	if o.err != nil || !o.fl.Changed(name) {
		return
	}
	v, err := o.fl.GetString(name)
	if err != nil {
		o.err = fmt.Errorf("flag --%s: %w", name, err)
		return
	}
	*dst = v
}
