package isin_test

import (
	"fmt"

	"github.com/holiman/uint256"

	"isincodec/internal/isin"
)

func ExampleEncode() {
	v, err := isin.Encode("US0378331005")
	if err != nil {
		panic(err)
	}
	fmt.Println("Encoded:", v.Dec())

	id, err := isin.Decode(v)
	if err != nil {
		panic(err)
	}
	fmt.Println("Decoded:", id)
	// Output:
	// Encoded: 4051032581069391173
	// Decoded: US0378331005
}

func ExampleDecode() {
	id, _ := isin.Decode(uint256.NewInt(123))
	fmt.Println(id)
	// Output: 00000000003F
}
