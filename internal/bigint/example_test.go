package bigint_test

import (
	"fmt"

	"github.com/hausp/bigcalc/internal/bigint"
)

// ExampleParse demonstrates parsing decimal text of arbitrary length.
func ExampleParse() {
	v, err := bigint.Parse("123456781234567812345678")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)

	_, err = bigint.Parse("12,345")
	fmt.Println(err)
	// Output:
	// 123456781234567812345678
	// bigint: parsing "12,345": invalid decimal integer
}

// ExampleInt_Add demonstrates sign-aware addition.
func ExampleInt_Add() {
	a := bigint.MustParse("100000000000000000000")
	b := bigint.MustParse("-1")

	fmt.Println(a.Add(b))
	// Output:
	// 99999999999999999999
}

// ExampleInt_Lsh demonstrates shifting across group boundaries.
func ExampleInt_Lsh() {
	one := bigint.New(1)

	fmt.Println(one.Lsh(100))
	fmt.Println(one.Lsh(100).Rsh(100))
	// Output:
	// 1267650600228229401496703205376
	// 1
}

// ExampleInt_Rsh demonstrates the arithmetic right shift of negative values.
func ExampleInt_Rsh() {
	fmt.Println(bigint.New(-5).Rsh(1))
	fmt.Println(bigint.New(-2).Rsh(999999999))
	// Output:
	// -3
	// -1
}

// ExampleInt_Cmp demonstrates sign-aware ordering.
func ExampleInt_Cmp() {
	a := bigint.MustParse("-8423982138934987132893497547132978423978132")
	b := bigint.New(42)

	fmt.Println(a.Cmp(b))
	fmt.Println(b.Cmp(a))
	fmt.Println(a.Cmp(a))
	// Output:
	// -1
	// 1
	// 0
}
