package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luckyComet55/whitebox-sim/internal/bank"
	"github.com/luckyComet55/whitebox-sim/internal/catalog"
	"github.com/luckyComet55/whitebox-sim/internal/fsm"
	"github.com/luckyComet55/whitebox-sim/internal/machine"
	"github.com/luckyComet55/whitebox-sim/internal/rules"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
)

// CommandHandler turns command lines into calls on one set of simulators.
type CommandHandler struct {
	logger     *slog.Logger
	simulators map[string]machine.Simulator
	bank       *bank.BankingSystem
	auth       *rules.Authenticator
}

func NewCommandHandler(bs *bank.BankingSystem, auth *rules.Authenticator, logger *slog.Logger) *CommandHandler {
	ch := &CommandHandler{
		logger:     logger,
		simulators: make(map[string]machine.Simulator),
		bank:       bs,
		auth:       auth,
	}

	for _, sim := range []machine.Simulator{
		machine.NewVendingMachine(),
		machine.NewTrafficLight(),
		machine.NewUserAuthentication(),
		machine.NewDocumentEditor(),
		machine.NewElevator(),
	} {
		name := sim.Name()
		sim.OnTransition(func(from, to fsm.State, event fsm.Event, _ *fsm.FSMContext) error {
			logger.Debug("transition", "machine", name, "from", from, "to", to, "event", event)
			return nil
		})
		ch.simulators[name] = sim
	}

	return ch
}

// Handle runs one command line and returns what it printed.
func (ch *CommandHandler) Handle(line string) (string, error) {
	args, err := splitFields(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	ch.logger.Debug("handling command", "command", args[0], "args", args[1:])

	switch args[0] {
	case "bank":
		return ch.handleBank(args[1:])
	case "rules":
		return ch.handleRule(args[1:])
	case "product":
		return ch.handleProduct(args[1:])
	case "state":
		return ch.handleState(args[1:])
	}

	sim, ok := ch.simulators[args[0]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	if len(args) != 2 {
		return "", fmt.Errorf("%w: %s <%s>", ErrUsage, args[0], strings.Join(sim.Operations(), "|"))
	}
	return sim.Apply(args[1])
}

func (ch *CommandHandler) handleState(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: state <machine>", ErrUsage)
	}
	sim, ok := ch.simulators[args[0]]
	if !ok {
		return "", fmt.Errorf("%w: no machine %q", ErrUnknownCommand, args[0])
	}
	return sim.State().String(), nil
}

func (ch *CommandHandler) handleBank(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: bank <authenticate|transfer|logout|balance>", ErrUsage)
	}

	switch args[0] {
	case "authenticate":
		if len(args) != 3 {
			return "", fmt.Errorf("%w: bank authenticate <user> <password>", ErrUsage)
		}
		return strconv.FormatBool(ch.bank.Authenticate(args[1], args[2])), nil
	case "transfer":
		if len(args) != 5 {
			return "", fmt.Errorf("%w: bank transfer <from> <to> <amount> <type>", ErrUsage)
		}
		amount, err := parseFloat(args[3])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ch.bank.TransferMoney(args[1], args[2], amount, args[4])), nil
	case "logout":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: bank logout <user>", ErrUsage)
		}
		return strconv.FormatBool(ch.bank.Logout(args[1])), nil
	case "balance":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: bank balance <user>", ErrUsage)
		}
		balance, ok := ch.bank.Balance(args[1])
		if !ok {
			return "", fmt.Errorf("%w: %q", bank.ErrUnknownAccount, args[1])
		}
		return rules.FormatNumber(balance), nil
	}

	return "", fmt.Errorf("%w: bank %q", ErrUnknownCommand, args[0])
}

func (ch *CommandHandler) handleProduct(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: product <name> <price>", ErrUsage)
	}
	price, err := parseFloat(args[1])
	if err != nil {
		return "", err
	}
	return catalog.NewProduct(args[0], price).String(), nil
}

// splitFields splits on whitespace, keeping double quoted text together.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		pending bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case !quoted && (r == ' ' || r == '\t'):
			if pending {
				fields = append(fields, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote", ErrUsage)
	}
	if pending {
		fields = append(fields, current.String())
	}
	return fields, nil
}
