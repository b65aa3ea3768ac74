package weft_test

import (
	"fmt"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/weft"
)

func ExampleRuntime_Create() {
	rt := weft.New(weft.DefaultOptions())
	defer rt.Close()

	count := rt.Dynamic(0)
	button := rt.Create(weft.Tag("button"), weft.Props{
		"class": "counter",
		"onclick": func(*dom.Event) {
			count.Update(count.Value().(int) + 1)
		},
	}, func() any { return count.Value() })

	rt.Render(rt.Document().Body(), button, weft.PlacementChildren, nil)

	fmt.Println(dom.TextContent(button))
	count.Update(3)
	fmt.Println(dom.TextContent(button))
	// Output:
	// 0
	// 3
}

func ExampleRuntime_Select() {
	rt := weft.New(weft.DefaultOptions())
	defer rt.Close()

	rt.Render(rt.Document().Body(), rt.Create(weft.Tag("main"), weft.Props{"id": "app"},
		rt.Create(weft.Tag("p"), nil, "hello"),
	), weft.PlacementChildren, nil)

	p := rt.Select("#app p")
	fmt.Println(dom.TextContent(p))
	// Output:
	// hello
}
