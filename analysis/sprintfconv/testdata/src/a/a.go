package a

import (
	"fmt"
	"strconv"
)

func flagged(n int, id int64, ok bool, name string) []string {
	return []string{
		fmt.Sprintf("%d", n),    // want `fmt.Sprintf can be replaced by strconv.Itoa`
		fmt.Sprintf("%v", n),    // want `fmt.Sprintf can be replaced by strconv.Itoa`
		fmt.Sprintf("%d", id),   // want `fmt.Sprintf can be replaced by strconv.FormatInt`
		fmt.Sprintf("%v", id),   // want `fmt.Sprintf can be replaced by strconv.FormatInt`
		fmt.Sprintf("%t", ok),   // want `fmt.Sprintf can be replaced by strconv.FormatBool`
		fmt.Sprintf("%s", name), // want `fmt.Sprintf on a single string operand is redundant`
		fmt.Sprintf("%v", name), // want `fmt.Sprintf on a single string operand is redundant`
		strconv.Itoa(n),
	}
}

func flaggedExpressions(ns []int) string {
	return fmt.Sprintf("%d", len(ns)+1) // want `fmt.Sprintf can be replaced by strconv.Itoa`
}

type port int

func notFlagged(n int, name string, v interface{}, p port, f float64) {
	_ = fmt.Sprintf("%d items", n)    // literal text around the verb
	_ = fmt.Sprintf("%s=%d", name, n) // more than one operand
	_ = fmt.Sprintf("%v", v)          // interface operand
	_ = fmt.Sprintf("%x", n)          // verb outside the supported set
	_ = fmt.Sprintf("%d", p)          // named type needs a conversion first
	_ = fmt.Sprintf("%v", f)          // no strconv shorthand taken for floats
}

func stringSlicing(name string) string {
	return fmt.Sprintf("%s", name[:1]) // want `fmt.Sprintf on a single string operand is redundant`
}
