package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sergyinfo/dos86/expr"
	"github.com/sergyinfo/dos86/translate"
)

var f = translate.From

// format renders an evaluation result, trimming the floating point noise
// of whole-number results.
func format(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(f("Enter an expression (or \"exit\" to quit): "))

		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(text, "exit") {
			fmt.Println(f("Exiting the program."))
			break
		}
		if len(text) == 0 {
			continue
		}

		value, err := expr.Interpret(text)
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Println(f("Result: %v", format(value)))
	}
}
