package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/leslie-fei/fasthash"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Available commands: hash <text>, sum <text>, verify <hex> <text>, exit")

	for scanner.Scan() {
		input := scanner.Text()
		parts := strings.SplitN(input, " ", 2)

		switch parts[0] {
		case "exit":
			return
		case "hash":
			if len(parts) < 2 {
				fmt.Println("usage: hash <text>")
				continue
			}
			digest, err := fasthash.Hash(parts[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(digest)
		case "sum":
			if len(parts) < 2 {
				fmt.Println("usage: sum <text>")
				continue
			}
			sum, err := fasthash.Sum64String(parts[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(sum)
		case "verify":
			args := strings.SplitN(input, " ", 3)
			if len(args) < 3 {
				fmt.Println("usage: verify <hex> <text>")
				continue
			}
			ok, err := fasthash.Verify(args[2], args[1])
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(ok)
		default:
			fmt.Println("unknown command:", parts[0])
		}
	}
}
