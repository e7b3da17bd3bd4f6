// SPDX-License-Identifier: MIT
package network_test

import (
	"fmt"

	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
)

// ExampleGraph builds a two-provider trust graph by hand.
func ExampleGraph() {
	c, _ := service.MakeServices(4)
	g := network.NewGraph(c)
	alice, _ := network.NewProvider("P00", c[:2])
	bob, _ := network.NewProvider("P01", c[2:])
	_ = g.AddProvider(alice)
	_ = g.AddProvider(bob)
	_, _ = g.Connect("P00", "P01", network.Trust{Service: c[2], Level: 0.75})

	for _, e := range g.Edges() {
		fmt.Println(e.From, "->", e.To, e.Trust)
	}
	fmt.Println("well formed:", network.IsWellFormed(g))

	// Output:
	// P00 -> P01 S03(+0.750)
	// well formed: true
}
