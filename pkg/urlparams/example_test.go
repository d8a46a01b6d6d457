package urlparams_test

import (
	"fmt"

	"github.com/dmitrymomot/urlkit/pkg/navigation"
	"github.com/dmitrymomot/urlkit/pkg/urlparams"
)

func ExampleQuery() {
	nav := navigation.NewMemory("https://www.example.com/path1/path2?param=value1&q=hey")

	params, _ := urlparams.Query(nav, "")
	params.Each(func(k, v string) bool {
		fmt.Println(k, "=", v)
		return true
	})
	// Output:
	// param = value1
	// q = hey
}

func ExampleParseHash() {
	nav := navigation.NewMemory("https://www.example.com/")

	params, _ := urlparams.ParseHash(nav, "http://www.example.com#test1=var1&test2=var2")
	data, _ := params.MarshalJSON()
	fmt.Println(string(data))
	// Output: {"test1":"var1","test2":"var2"}
}

func ExampleChangeURLHash() {
	nav := navigation.NewMemory("http://www.example.com/")

	urlparams.ChangeURLHash(nav, "test_param")
	fmt.Println(nav.Href())
	// Output: http://www.example.com/#test_param
}
