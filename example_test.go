package flaghandler_test

import (
	"fmt"

	"github.com/pressly/flaghandler"
)

func Example() {
	h := flaghandler.NewFromArgs([]string{"prog", "-height", "600", "-verbose", "-nums", "[1,2,3]"})

	width := flaghandler.Value[uint32](h, "width", 50, "the width")
	height := flaghandler.Value[uint32](h, "height", 50, "the height")
	title := flaghandler.Value(h, "title", "MyTitle", "the title")
	verbose := h.Bool("verbose", false, "enable verbose output")
	nums := flaghandler.List(h, "nums", []int{9}, "some numbers")

	fmt.Println(width, height, title, verbose, nums)
	// Output: 50 600 MyTitle true [1 2 3]
}
