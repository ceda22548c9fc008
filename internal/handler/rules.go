package handler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/luckyComet55/whitebox-sim/internal/rules"
)

type ruleCommand struct {
	usage string
	arity int // -1 for variadic
	run   func(ch *CommandHandler, args []string) (string, error)
}

var ruleCommands = map[string]ruleCommand{
	"is_even": {"<n>", 1, func(_ *CommandHandler, a []string) (string, error) {
		n, err := parseInt(a[0])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(rules.IsEven(n)), nil
	}},
	"divide": {"<a> <b>", 2, func(_ *CommandHandler, a []string) (string, error) {
		f, err := parseFloats(a)
		if err != nil {
			return "", err
		}
		return rules.FormatNumber(rules.Divide(f[0], f[1])), nil
	}},
	"check_number_status": {"<n>", 1, floatRule(rules.CheckNumberStatus)},
	"get_grade":           {"<score>", 1, floatRule(rules.GetGrade)},
	"is_triangle": {"<a> <b> <c>", 3, func(_ *CommandHandler, a []string) (string, error) {
		f, err := parseFloats(a)
		if err != nil {
			return "", err
		}
		return rules.IsTriangle(f[0], f[1], f[2]), nil
	}},
	"celsius_to_fahrenheit": {"<celsius>", 1, floatRule(rules.FahrenheitLabel)},
	"validate_password": {"<password>", 1, func(_ *CommandHandler, a []string) (string, error) {
		return strconv.FormatBool(rules.ValidatePassword(a[0])), nil
	}},
	"validate_login": {"<username> <password>", 2, func(_ *CommandHandler, a []string) (string, error) {
		return rules.ValidateLogin(a[0], a[1]), nil
	}},
	"validate_email":       {"<email>", 1, stringRule(rules.ValidateEmail)},
	"validate_credit_card": {"<number>", 1, stringRule(rules.ValidateCreditCard)},
	"validate_url":         {"<url>", 1, stringRule(rules.ValidateURL)},
	"validate_date": {"<year> <month> <day>", 3, func(_ *CommandHandler, a []string) (string, error) {
		n, err := parseInts(a)
		if err != nil {
			return "", err
		}
		return rules.ValidateDate(n[0], n[1], n[2]), nil
	}},
	"check_file_size": {"<bytes>", 1, func(_ *CommandHandler, a []string) (string, error) {
		n, err := strconv.ParseInt(a[0], 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not an integer", ErrUsage, a[0])
		}
		return rules.CheckFileSize(n), nil
	}},
	"calculate_total_discount": {"<total>", 1, floatRule(func(f float64) string {
		return rules.FormatNumber(rules.CalculateTotalDiscount(f))
	})},
	"calculate_order_total": {"<qty>x<price>...", -1, func(_ *CommandHandler, a []string) (string, error) {
		items := make([]rules.OrderItem, 0, len(a))
		for _, arg := range a {
			qty, price, ok := strings.Cut(arg, "x")
			if !ok {
				return "", fmt.Errorf("%w: %q is not <qty>x<price>", ErrUsage, arg)
			}
			q, err := parseInt(qty)
			if err != nil {
				return "", err
			}
			p, err := parseFloat(price)
			if err != nil {
				return "", err
			}
			items = append(items, rules.OrderItem{Quantity: q, Price: p})
		}
		return rules.FormatNumber(rules.CalculateOrderTotal(items)), nil
	}},
	"calculate_quantity_discount": {"<quantity>", 1, intRule(rules.CalculateQuantityDiscount)},
	"calculate_items_shipping_cost": {"<method> <weight>...", -1, func(_ *CommandHandler, a []string) (string, error) {
		if len(a) == 0 {
			return "", fmt.Errorf("%w: missing shipping method", ErrUsage)
		}
		weights, err := parseFloats(a[1:])
		if err != nil {
			return "", err
		}
		items := make([]rules.ShipmentItem, 0, len(weights))
		for _, w := range weights {
			items = append(items, rules.ShipmentItem{Weight: w})
		}
		cost, err := rules.CalculateItemsShippingCost(items, rules.ShippingMethod(a[0]))
		if err != nil {
			return "", err
		}
		return rules.FormatNumber(cost), nil
	}},
	"calculate_shipping_cost": {"<weight> <length> <width> <height>", 4, func(_ *CommandHandler, a []string) (string, error) {
		f, err := parseFloats(a)
		if err != nil {
			return "", err
		}
		return rules.FormatNumber(rules.CalculateShippingCost(f[0], f[1], f[2], f[3])), nil
	}},
	"categorize_product": {"<price>", 1, floatRule(rules.CategorizeProduct)},
	"verify_age":         {"<age>", 1, intRule(rules.VerifyAge)},
	"check_flight_eligibility": {"<age> <frequent-flyer>", 2, func(_ *CommandHandler, a []string) (string, error) {
		age, err := parseInt(a[0])
		if err != nil {
			return "", err
		}
		ff, err := strconv.ParseBool(a[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a boolean", ErrUsage, a[1])
		}
		return rules.CheckFlightEligibility(age, ff), nil
	}},
	"check_loan_eligibility": {"<income> <credit-score>", 2, func(_ *CommandHandler, a []string) (string, error) {
		income, err := parseFloat(a[0])
		if err != nil {
			return "", err
		}
		score, err := parseInt(a[1])
		if err != nil {
			return "", err
		}
		return rules.CheckLoanEligibility(income, score), nil
	}},
	"grade_quiz": {"<correct> <incorrect>", 2, func(_ *CommandHandler, a []string) (string, error) {
		n, err := parseInts(a)
		if err != nil {
			return "", err
		}
		return rules.GradeQuiz(n[0], n[1]), nil
	}},
	"authenticate_user": {"<username> <password>", 2, func(ch *CommandHandler, a []string) (string, error) {
		return ch.auth.AuthenticateUser(a[0], a[1]), nil
	}},
	"get_weather_advisory": {"<temperature> <humidity>", 2, func(_ *CommandHandler, a []string) (string, error) {
		f, err := parseFloats(a)
		if err != nil {
			return "", err
		}
		return rules.GetWeatherAdvisory(f[0], f[1]), nil
	}},
}

// RuleNames lists the rules reachable through "rules <name>".
func RuleNames() []string {
	names := make([]string, 0, len(ruleCommands))
	for name := range ruleCommands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (ch *CommandHandler) handleRule(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: rules <name> <args...>", ErrUsage)
	}

	cmd, ok := ruleCommands[args[0]]
	if !ok {
		return "", fmt.Errorf("%w: rule %q", ErrUnknownCommand, args[0])
	}
	if cmd.arity >= 0 && len(args)-1 != cmd.arity {
		return "", fmt.Errorf("%w: rules %s %s", ErrUsage, args[0], cmd.usage)
	}
	return cmd.run(ch, args[1:])
}

func floatRule(fn func(float64) string) func(*CommandHandler, []string) (string, error) {
	return func(_ *CommandHandler, a []string) (string, error) {
		f, err := parseFloat(a[0])
		if err != nil {
			return "", err
		}
		return fn(f), nil
	}
}

func intRule(fn func(int) string) func(*CommandHandler, []string) (string, error) {
	return func(_ *CommandHandler, a []string) (string, error) {
		n, err := parseInt(a[0])
		if err != nil {
			return "", err
		}
		return fn(n), nil
	}
}

func stringRule(fn func(string) string) func(*CommandHandler, []string) (string, error) {
	return func(_ *CommandHandler, a []string) (string, error) {
		return fn(a[0]), nil
	}
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, s)
	}
	return f, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrUsage, s)
	}
	return n, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
