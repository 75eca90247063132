package signal_test

import (
	"fmt"

	"github.com/delaneyj/slotparty/signal"
)

type listener struct {
	name string
}

func (l *listener) Listen(msg string) {
	fmt.Println(l.name, "received:", msg)
}

func ExampleSubscribeMember() {
	alice, bob := &listener{name: "Alice"}, &listener{name: "Bob"}
	var aliceSays, bobSays signal.Signal[string]

	signal.SubscribeMember(&aliceSays, bob, (*listener).Listen)
	signal.SubscribeMember(&bobSays, alice, (*listener).Listen)

	aliceSays.Fire("Have a nice day!")
	bobSays.Fire("Thank you!")
	// Output:
	// Bob received: Have a nice day!
	// Alice received: Thank you!
}
