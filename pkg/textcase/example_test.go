package textcase_test

import (
	"fmt"

	"github.com/msto63/textcase/pkg/textcase"
)

func ExampleConverter() {
	c := textcase.New(textcase.DefaultConfig())

	fmt.Println(c.Title("this_is_a_test"))
	fmt.Println(c.Slug("tést wîth spécîål chåråctérs"))
	fmt.Println(c.SnakeCase("TestingCamelCaps"))
	fmt.Println(c.CamelCaps("this-is-a-test"))
	fmt.Println(c.CamelCase("testing, with punctuation."))
	fmt.Println(c.Namespaced("testingCamelCase"))
	// Output:
	// This Is A Test
	// test-with-special-characters
	// testing_camel_caps
	// ThisIsATest
	// testingWithPunctuation
	// testing\camel\case
}

func ExampleParseFormat() {
	f, err := textcase.ParseFormat("kebab")
	if err != nil {
		panic(err)
	}
	fmt.Println(f, textcase.Convert(f, "Another Test"))
	// Output:
	// slug another-test
}

func ExampleConvertNullable() {
	fmt.Println(textcase.ConvertNullable(textcase.FormatSnake, nil) == nil)

	s := "Another Test"
	fmt.Println(*textcase.ConvertNullable(textcase.FormatSnake, &s))
	// Output:
	// true
	// another_test
}
