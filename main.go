package main

import (
	"fmt"
	"unsafe"

	"github.com/ember-math/xfloat/bigdouble"
	"github.com/ember-math/xfloat/quad"
)

func main() {
	println("BigDouble:", unsafe.Sizeof(bigdouble.BigDouble{}))
	println("Quad:", unsafe.Sizeof(quad.Quad{}))
	println("--------------------")

	format := "%-8s\t%20s\t%s\n"
	sep := "-------------------------------------------------------------"

	a := bigdouble.MustParse("100.00")
	b := bigdouble.MustParse("200.00")
	c := bigdouble.Add(a, b)
	fmt.Printf(format, "a", a.String(), fmtBD(a))
	fmt.Printf(format, "b", b.String(), fmtBD(b))
	fmt.Printf(format, "a+b", c.String(), fmtBD(c))
	println(sep)

	a = bigdouble.MustParse("1e308")
	b = bigdouble.MustParse("1e308")
	c = bigdouble.Mul(a, b)
	fmt.Printf(format, "a", a.String(), fmtBD(a))
	fmt.Printf(format, "b", b.String(), fmtBD(b))
	fmt.Printf(format, "a*b", c.String(), fmtBD(c))
	fmt.Println("a*b overflowed binary64 but stayed finite here:", c.IsFinite())
	println(sep)

	n := bigdouble.FromInt(20)
	fmt.Printf(format, "20!", bigdouble.Factorial(n).String(), "")
	println(sep)

	qa := quad.FromInt64(1 << 40)
	qb := quad.Sqrt(qa)
	fmt.Printf(format, "2^40", qa.String(), fmtQ(qa))
	fmt.Printf(format, "sqrt", qb.String(), fmtQ(qb))
	println(sep)

	qx := quad.MustParse("1e4000")
	qy := quad.MustParse("1e-4000")
	qz := quad.Mul(qx, qy)
	fmt.Printf(format, "x", qx.String(), fmtQ(qx))
	fmt.Printf(format, "y", qy.String(), fmtQ(qy))
	fmt.Printf(format, "x*y", qz.String(), fmtQ(qz))
	println(sep)

	fmt.Println("Infinity:", bigdouble.Inf(1).String(), quad.Inf(1).String())
	fmt.Println("NaN:", bigdouble.NaN().String(), quad.NaN().String())
	fmt.Println("-Infinity is negative:", bigdouble.Inf(-1).IsNegative(), quad.Inf(-1).IsNegative())
}

func fmtBD(b bigdouble.BigDouble) string {
	s, _ := b.Format("R")
	return s
}

func fmtQ(q quad.Quad) string {
	s, _ := q.Format("HexExponential")
	return s
}
