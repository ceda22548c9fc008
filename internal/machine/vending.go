package machine

import "github.com/luckyComet55/whitebox-sim/internal/fsm"

const (
	VendingReady      fsm.State = "Ready"
	VendingDispensing fsm.State = "Dispensing"

	EventInsertCoin  fsm.Event = "insert_coin"
	EventSelectDrink fsm.Event = "select_drink"
)

type VendingMachine struct {
	*machine
}

func NewVendingMachine() *VendingMachine {
	f := fsm.NewFSM(VendingReady).
		Transition(VendingReady, EventInsertCoin, VendingDispensing).
		Transition(VendingDispensing, EventSelectDrink, VendingReady)

	m := newMachine("vending", f, invalidOperationPeriod).
		message(EventInsertCoin, "Coin Inserted. Select your drink.").
		message(EventSelectDrink, "Drink Dispensed. Thank you!")

	return &VendingMachine{m}
}

// NewVendingMachineAt returns a vending machine already in state.
func NewVendingMachineAt(state fsm.State) (*VendingMachine, error) {
	vm := NewVendingMachine()
	if err := vm.restore(state); err != nil {
		return nil, err
	}
	return vm, nil
}

func (vm *VendingMachine) InsertCoin() string {
	return vm.fire(EventInsertCoin)
}

func (vm *VendingMachine) SelectDrink() string {
	return vm.fire(EventSelectDrink)
}
