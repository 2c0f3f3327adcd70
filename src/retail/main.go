// retail is the interactive console of a retail chain: customers order from
// nearby stores, managers run their inventory, admins manage users and products.
package main

import (
	"github.com/bitswalk/retail/src/retail/core"
)

func main() {
	core.Execute()
}
