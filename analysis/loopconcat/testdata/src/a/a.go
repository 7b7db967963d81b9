package a

import "fmt"

func joinAll(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p // want `string concatenation in a loop; use strings.Builder`
	}
	return out
}

func forLoop(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "x" // want `string concatenation in a loop; use strings.Builder`
	}
	return s
}

func nested(rows [][]string) string {
	table := ""
	for _, row := range rows {
		for _, cell := range row {
			table += cell // want `string concatenation in a loop; use strings.Builder`
		}
		table += "\n" // want `string concatenation in a loop; use strings.Builder`
	}
	return table
}

type label string

func namedStringType(tags []label) label {
	var all label
	for _, tag := range tags {
		all += tag // want `string concatenation in a loop; use strings.Builder`
	}
	return all
}

func perIterationAccumulator(parts []string) {
	for _, p := range parts {
		line := "- "
		line += p // line is rebuilt every iteration
		fmt.Println(line)
	}
}

func rangeVariable(parts []string) {
	for i := range parts {
		parts[i] += "!" // indexed element, not an identifier
	}
	for _, p := range parts {
		p += "!" // p dies with the iteration
		_ = p
	}
}

func integerSum(ns []int) int {
	sum := 0
	for _, n := range ns {
		sum += n
	}
	return sum
}

func outsideLoop(a, b string) string {
	a += b
	return a
}
