// SPDX-License-Identifier: MIT
package workunit_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/trustnet/network"
	"github.com/katalvlaran/trustnet/service"
	"github.com/katalvlaran/trustnet/trust"
	"github.com/katalvlaran/trustnet/workunit"
)

// ExampleFindBest picks the pair of suppliers that trust each other most.
func ExampleFindBest() {
	c, _ := service.MakeServices(4)
	g := network.NewGraph(c)
	for _, p := range []struct {
		name string
		svc  service.Service
	}{{"P00", c[0]}, {"P01", c[1]}, {"P02", c[2]}, {"P03", c[2]}} {
		np, _ := network.NewProvider(p.name, []service.Service{p.svc})
		_ = g.AddProvider(np)
	}
	_, _ = g.Connect("P00", "P01", network.Trust{Service: c[1], Level: 0.5})
	_, _ = g.Connect("P00", "P02", network.Trust{Service: c[2], Level: 0.5})
	_, _ = g.Connect("P00", "P03", network.Trust{Service: c[2], Level: 0.5})
	_, _ = g.Connect("P01", "P03", network.Trust{Service: c[2], Level: 0.8})
	_, _ = g.Connect("P03", "P01", network.Trust{Service: c[1], Level: 0.6})

	r, _ := trust.NewResolver(g, c)
	sel, found, err := workunit.FindBest(context.Background(), r, "P00", []service.Service{c[1], c[2]}, 2, 1)
	if err != nil || !found {
		fmt.Println("no unit", err)
		return
	}
	fmt.Printf("%d units, best %.2f\n", sel.Enumerated, sel.Score)
	fmt.Print(sel.Unit)
	// Output:
	// 2 units, best 0.70
	// -- Working unit --
	// Service S02 -> Provider P01;
	// Service S03 -> Provider P03;
	// ------------------
}
