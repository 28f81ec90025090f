package movement_test

import (
	"fmt"

	"github.com/noodlebox/movement"
)

func ExampleWatch() {
	watch := movement.New("13:34", true)
	movement.AddAssign(&watch, "01:23:45")
	movement.AddAssign(&watch, 43434343)
	fmt.Println(watch)
	// Output: 08:03:28 AM +503 days
}

func ExampleSubAssign() {
	watch := movement.New("01:34 AM", false)
	movement.AddAssign(&watch, "01:23:45")
	movement.SubAssign(&watch, 1000000)
	fmt.Println(watch)
	// Output: 13:11:05 -12 days
}

func ExampleAdd() {
	watch := movement.New("13:34", true)
	fmt.Println(movement.Add(watch, "01:23:45"))
	// Output: 02:57:45 PM
}

func ExampleWatch_ChangeMeridiem() {
	watch := movement.New("13:34", true)
	movement.SubAssign(&watch, 100000000)
	fmt.Println(watch)

	watch.ChangeMeridiem(false)
	movement.AddAssign(&watch, "13:23:03")
	fmt.Println(watch)
	// Output:
	// 03:47:20 AM -1157 days
	// 17:10:23 -1157 days
}
